package ai

import (
	"sort"

	"example.com/cluedo-server/internal/cards"

	"github.com/sirupsen/logrus"
)

// CardStatus defines the knowledge state of a card at one location.
type CardStatus int

const (
	StatusMaybe CardStatus = iota
	StatusYes
	StatusNo
)

// SolutionLocation is the pseudo-player holding the three hidden cards.
const SolutionLocation = "solution"

// UnresolvedSuggestion tracks a disproval where the specific card shown is unknown.
type UnresolvedSuggestion struct {
	Disprover     string
	PossibleCards map[cards.Card]struct{}
}

// Notebook is a detective's grid: for every card, whether each player (and the
// solution) holds it. Every deduction it makes is sound, so a fully solved
// notebook always names the true solution.
type Notebook struct {
	owner                 string
	players               []string
	hand                  map[cards.Card]struct{}
	knowledge             map[cards.Card]map[string]CardStatus
	unresolvedSuggestions []UnresolvedSuggestion
	log                   logrus.FieldLogger
}

// NewNotebook creates a blank grid for owner, seated at a table of players.
func NewNotebook(logger logrus.FieldLogger, owner string, players []string) *Notebook {
	n := &Notebook{
		owner:     owner,
		players:   append([]string(nil), players...),
		hand:      make(map[cards.Card]struct{}),
		knowledge: make(map[cards.Card]map[string]CardStatus),
		log:       logger.WithField("player", owner),
	}
	for _, card := range cards.All() {
		n.knowledge[card] = make(map[string]CardStatus)
		for _, loc := range n.locations() {
			n.knowledge[card][loc] = StatusMaybe
		}
	}
	return n
}

func (n *Notebook) Owner() string     { return n.owner }
func (n *Notebook) Players() []string { return n.players }

// Status returns what is known about card at location.
func (n *Notebook) Status(card cards.Card, location string) CardStatus {
	return n.knowledge[card][location]
}

// Holds reports whether the owner was dealt card.
func (n *Notebook) Holds(card cards.Card) bool {
	_, ok := n.hand[card]
	return ok
}

// Hand returns the owner's cards in catalog order.
func (n *Notebook) Hand() []cards.Card {
	var out []cards.Card
	for _, card := range cards.All() {
		if n.Holds(card) {
			out = append(out, card)
		}
	}
	return out
}

// ReceiveHand records the owner's full hand: those cards are theirs, every
// other card is not.
func (n *Notebook) ReceiveHand(hand []cards.Card) {
	for _, card := range hand {
		n.hand[card] = struct{}{}
		n.markCardLocation(card, n.owner)
	}
	for _, card := range cards.All() {
		if !n.Holds(card) {
			n.markNotAt(card, n.owner)
		}
	}
	n.runDeductionLoop()
}

// Observe learns from a resolved suggestion. revealed is the card shown, and
// is only non-nil when the owner was the suggester.
func (n *Notebook) Observe(suggester string, s cards.Suggestion, disprover string, revealed *cards.Card) {
	// Everyone asked before the disprover (or everyone, if nobody disproved)
	// holds none of the suggested cards.
	for _, asked := range n.askedWithoutMatch(suggester, disprover) {
		for _, card := range s.Cards() {
			n.markNotAt(card, asked)
		}
	}

	switch {
	case disprover == "" && suggester == n.owner:
		n.log.Infof("My suggestion was not disproved! Making powerful deductions.")
		for _, card := range s.Cards() {
			if !n.Holds(card) {
				n.markCardLocation(card, SolutionLocation)
			}
		}
	case disprover != "" && revealed != nil:
		n.markCardLocation(*revealed, disprover)
	case disprover != "" && disprover != n.owner:
		mystery := UnresolvedSuggestion{Disprover: disprover, PossibleCards: make(map[cards.Card]struct{})}
		for _, card := range s.Cards() {
			mystery.PossibleCards[card] = struct{}{}
		}
		n.unresolvedSuggestions = append(n.unresolvedSuggestions, mystery)
		n.log.Debugf("Noted that %s holds one of %v.", disprover, sortedCards(mystery.PossibleCards))
	}

	n.runDeductionLoop()
}

// Solution returns the deduced solution once all three categories are known.
func (n *Notebook) Solution() (cards.Suggestion, bool) {
	var known []cards.Card
	for _, cat := range cards.Categories {
		card, ok := n.knownSolutionCard(cat)
		if !ok {
			return cards.Suggestion{}, false
		}
		known = append(known, card)
	}
	s, err := cards.FromCards(known...)
	return s, err == nil
}

// askedWithoutMatch lists the players asked before disprover, in turn order
// after suggester. With no disprover it is every other player.
func (n *Notebook) askedWithoutMatch(suggester, disprover string) []string {
	start := indexOf(n.players, suggester)
	if start < 0 {
		return nil
	}
	var asked []string
	for i := 1; i < len(n.players); i++ {
		name := n.players[(start+i)%len(n.players)]
		if name == disprover {
			break
		}
		asked = append(asked, name)
	}
	return asked
}

func (n *Notebook) locations() []string {
	return append(append([]string(nil), n.players...), SolutionLocation)
}

func (n *Notebook) knownSolutionCard(cat cards.Category) (cards.Card, bool) {
	for _, card := range cards.ForCategory(cat) {
		if n.knowledge[card][SolutionLocation] == StatusYes {
			return card, true
		}
	}
	return cards.Card{}, false
}

// --- Internal Deduction Logic ---

func (n *Notebook) runDeductionLoop() {
	for i := 0; i < 10; i++ { // Safety break
		var changed bool
		changed = n.pruneAndSolveMysteries() || changed
		changed = n.deduceSolutionByElimination() || changed
		changed = n.deduceCardLocationsByElimination() || changed
		if !changed {
			break
		}
	}
}

// markCardLocation records that card is at location and nowhere else. A card
// in the solution also rules out the rest of its category.
func (n *Notebook) markCardLocation(card cards.Card, location string) bool {
	if n.knowledge[card][location] == StatusYes {
		return false // No change
	}
	n.log.Debugf("Learned that '%s' is with %s.", card, location)
	for _, loc := range n.locations() {
		n.knowledge[card][loc] = StatusNo
	}
	n.knowledge[card][location] = StatusYes

	if location == SolutionLocation {
		for _, other := range cards.ForCategory(card.Category) {
			if other != card {
				n.knowledge[other][SolutionLocation] = StatusNo
			}
		}
	}
	return true
}

func (n *Notebook) markNotAt(card cards.Card, location string) bool {
	if n.knowledge[card][location] != StatusMaybe {
		return false
	}
	n.knowledge[card][location] = StatusNo
	return true
}

func (n *Notebook) pruneAndSolveMysteries() bool {
	var changed bool
	var remainingMysteries []UnresolvedSuggestion
	for _, mystery := range n.unresolvedSuggestions {
		satisfied := false
		prunedCards := make(map[cards.Card]struct{})
		for card := range mystery.PossibleCards {
			switch n.knowledge[card][mystery.Disprover] {
			case StatusYes:
				satisfied = true
			case StatusMaybe:
				prunedCards[card] = struct{}{}
			}
		}
		if satisfied {
			changed = true
			continue
		}
		if len(prunedCards) < len(mystery.PossibleCards) {
			n.log.Debugf("Pruning mystery: %s's options narrowed to %v", mystery.Disprover, sortedCards(prunedCards))
			mystery.PossibleCards = prunedCards
			changed = true
		}
		if len(prunedCards) == 1 {
			card := sortedCards(prunedCards)[0]
			n.log.Infof("SOLVED A MYSTERY! %s must have shown '%s'.", mystery.Disprover, card)
			n.markCardLocation(card, mystery.Disprover)
			changed = true
		} else if len(prunedCards) > 1 {
			remainingMysteries = append(remainingMysteries, mystery)
		}
	}
	n.unresolvedSuggestions = remainingMysteries
	return changed
}

func (n *Notebook) deduceCardLocationsByElimination() bool {
	var changed bool
	for _, card := range cards.All() {
		var maybes []string
		isKnown := false
		for _, loc := range n.locations() {
			if n.knowledge[card][loc] == StatusYes {
				isKnown = true
				break
			}
			if n.knowledge[card][loc] == StatusMaybe {
				maybes = append(maybes, loc)
			}
		}
		if !isKnown && len(maybes) == 1 {
			if n.markCardLocation(card, maybes[0]) {
				changed = true
			}
		}
	}
	return changed
}

func (n *Notebook) deduceSolutionByElimination() bool {
	var changed bool
	for _, cat := range cards.Categories {
		if _, solved := n.knownSolutionCard(cat); solved {
			continue
		}
		var maybes []cards.Card
		for _, card := range cards.ForCategory(cat) {
			if n.knowledge[card][SolutionLocation] == StatusMaybe {
				maybes = append(maybes, card)
			}
		}
		if len(maybes) == 1 {
			if n.markCardLocation(maybes[0], SolutionLocation) {
				changed = true
			}
		}
	}
	return changed
}

func sortedCards(m map[cards.Card]struct{}) []cards.Card {
	k := make([]cards.Card, 0, len(m))
	for card := range m {
		k = append(k, card)
	}
	sort.Slice(k, func(i, j int) bool { return k[i].Name < k[j].Name })
	return k
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
