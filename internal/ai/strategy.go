package ai

import (
	"sort"

	"example.com/cluedo-server/internal/cards"
)

// SuggestionStrategy defines the interface for a bot's decision-making logic.
type SuggestionStrategy interface {
	BuildSuggestion(b *Bot) (cards.Suggestion, bool)
}

// --- Strategy Implementations ---

// ExploitStrategy keeps the solution cards already deduced and probes the rest.
type ExploitStrategy struct{}

func (s *ExploitStrategy) BuildSuggestion(b *Bot) (cards.Suggestion, bool) {
	var picked []cards.Card
	knownCount := 0
	for _, cat := range cards.Categories {
		if card, ok := b.notebook.knownSolutionCard(cat); ok {
			picked = append(picked, card)
			knownCount++
		} else {
			picked = append(picked, b.pickUnknownCard(cat))
		}
	}
	if knownCount == 0 || knownCount == len(cards.Categories) {
		return cards.Suggestion{}, false
	}
	b.log.Infof("Strategy: EXPLOIT. I know %d/3 of the solution.", knownCount)
	suggestion, err := cards.FromCards(picked...)
	return suggestion, err == nil
}

// SurgicalStrikeStrategy targets the card that appears most often among the
// refutations whose revealed card is still unknown, padding the suggestion
// with the bot's own cards so only the target can be shown.
type SurgicalStrikeStrategy struct{}

func (s *SurgicalStrikeStrategy) BuildSuggestion(b *Bot) (cards.Suggestion, bool) {
	if len(b.notebook.unresolvedSuggestions) == 0 {
		return cards.Suggestion{}, false
	}

	cardFrequency := make(map[cards.Card]int)
	for _, mystery := range b.notebook.unresolvedSuggestions {
		for card := range mystery.PossibleCards {
			cardFrequency[card]++
		}
	}

	sortedTargets := sortByValue(cardFrequency)
	var patientTargets []cards.Card
	for _, card := range sortedTargets {
		if !b.recentSurgicalTargets.Contains(card) {
			patientTargets = append(patientTargets, card)
		}
	}
	if len(patientTargets) == 0 {
		patientTargets = sortedTargets
	}
	target := b.chooser.Choose(patientTargets)
	b.log.Infof("Strategy: SURGICAL STRIKE. Targeting '%s'.", target)
	b.recentSurgicalTargets.Push(target)
	return b.buildSuggestionAroundTarget(target), true
}

// ExploreStrategy suggests cards the bot knows nothing about.
type ExploreStrategy struct{}

func (s *ExploreStrategy) BuildSuggestion(b *Bot) (cards.Suggestion, bool) {
	b.log.Infof("Strategy: EXPLORE. Gathering new information.")
	return s.mustBuild(b), true
}

func (s *ExploreStrategy) mustBuild(b *Bot) cards.Suggestion {
	return cards.Suggestion{
		Suspect: cards.Suspect(b.pickUnknownCard(cards.CategorySuspect).Name),
		Weapon:  cards.Weapon(b.pickUnknownCard(cards.CategoryWeapon).Name),
		Room:    cards.Room(b.pickUnknownCard(cards.CategoryRoom).Name),
	}
}

// --- Strategy Helpers ---

func (b *Bot) pickUnknownCard(cat cards.Category) cards.Card {
	cardList := cards.ForCategory(cat)
	var maybes []cards.Card
	for _, card := range cardList {
		if !b.notebook.Holds(card) && b.notebook.Status(card, SolutionLocation) == StatusMaybe {
			maybes = append(maybes, card)
		}
	}
	if len(maybes) > 0 {
		return maybes[b.rand.Intn(len(maybes))]
	}

	var notMyCards []cards.Card
	for _, card := range cardList {
		if !b.notebook.Holds(card) {
			notMyCards = append(notMyCards, card)
		}
	}
	if len(notMyCards) > 0 {
		return b.chooser.Choose(notMyCards)
	}
	return b.chooser.Choose(cardList)
}

func (b *Bot) buildSuggestionAroundTarget(target cards.Card) cards.Suggestion {
	picked := map[cards.Category]cards.Card{target.Category: target}

	myHand := b.notebook.Hand()
	b.rand.Shuffle(len(myHand), func(i, j int) { myHand[i], myHand[j] = myHand[j], myHand[i] })
	for _, card := range myHand {
		if _, exists := picked[card.Category]; !exists {
			picked[card.Category] = card
		}
	}
	for _, cat := range cards.Categories {
		if _, ok := picked[cat]; !ok {
			picked[cat] = b.pickUnknownCard(cat)
		}
	}
	return cards.Suggestion{
		Suspect: cards.Suspect(picked[cards.CategorySuspect].Name),
		Weapon:  cards.Weapon(picked[cards.CategoryWeapon].Name),
		Room:    cards.Room(picked[cards.CategoryRoom].Name),
	}
}

// --- Utility Types and Functions ---

// CardDeque remembers the last few cards, oldest first.
type CardDeque struct {
	elements []cards.Card
	maxSize  int
}

func NewCardDeque(maxSize int) *CardDeque {
	return &CardDeque{maxSize: maxSize}
}
func (d *CardDeque) Push(c cards.Card) {
	d.elements = append(d.elements, c)
	if len(d.elements) > d.maxSize {
		d.elements = d.elements[1:]
	}
}
func (d *CardDeque) Contains(c cards.Card) bool {
	for _, e := range d.elements {
		if e == c {
			return true
		}
	}
	return false
}

// sortByValue orders cards by descending frequency, ties by name.
func sortByValue(m map[cards.Card]int) []cards.Card {
	type kv struct {
		Key   cards.Card
		Value int
	}
	var ss []kv
	for k, v := range m {
		ss = append(ss, kv{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key.Name < ss[j].Key.Name
	})
	var result []cards.Card
	for _, kv := range ss {
		result = append(result, kv.Key)
	}
	return result
}
