package player

import (
	"example.com/cluedo-server/internal/cards"
)

// Player is a seat at the table: a unique name and the cards dealt to it.
type Player struct {
	Name  string       `json:"name"`
	Cards []cards.Card `json:"cards"`
}

// New creates a player with an empty hand.
func New(name string) *Player {
	return &Player{Name: name, Cards: []cards.Card{}}
}

// ReceiveHand appends dealt cards to the hand.
func (p *Player) ReceiveHand(hand []cards.Card) {
	p.Cards = append(p.Cards, hand...)
}

// Discard empties the hand.
func (p *Player) Discard() {
	p.Cards = []cards.Card{}
}

// Holds reports whether c is in the hand.
func (p *Player) Holds(c cards.Card) bool {
	for _, held := range p.Cards {
		if held == c {
			return true
		}
	}
	return false
}

// Matching returns the held cards named by the suggestion, in suspect,
// weapon, room order.
func (p *Player) Matching(s cards.Suggestion) []cards.Card {
	var canShow []cards.Card
	for _, c := range s.Cards() {
		if p.Holds(c) {
			canShow = append(canShow, c)
		}
	}
	return canShow
}

// ChooseCardToShow picks one card that disproves s, or reports false when the
// hand holds none of the suggested cards.
func (p *Player) ChooseCardToShow(s cards.Suggestion, chooser Chooser) (cards.Card, bool) {
	canShow := p.Matching(s)
	if len(canShow) == 0 {
		return cards.Card{}, false
	}
	return chooser.Choose(canShow), true
}

// Clone returns a deep copy that shares nothing with p.
func (p *Player) Clone() Player {
	hand := make([]cards.Card, len(p.Cards))
	copy(hand, p.Cards)
	return Player{Name: p.Name, Cards: hand}
}
