package player

import (
	"math/rand"
	"testing"

	"example.com/cluedo-server/internal/cards"
)

func TestChooseCardToShow(t *testing.T) {
	// GIVEN a player holding the Rope and the Hall
	p := New("Alice")
	p.ReceiveHand([]cards.Card{cards.WeaponCard(cards.Rope), cards.RoomCard(cards.Hall), cards.SuspectCard(cards.Plum)})

	t.Run("it reveals a matching card", func(t *testing.T) {
		s := cards.Suggestion{Suspect: cards.Green, Weapon: cards.Rope, Room: cards.Study}
		card, ok := p.ChooseCardToShow(s, &DeterministicChooser{})
		if !ok || card != cards.WeaponCard(cards.Rope) {
			t.Errorf("expected to reveal the Rope, got %v (%v)", card, ok)
		}
	})

	t.Run("the deterministic chooser picks alphabetically", func(t *testing.T) {
		s := cards.Suggestion{Suspect: cards.Green, Weapon: cards.Rope, Room: cards.Hall}
		card, _ := p.ChooseCardToShow(s, &DeterministicChooser{})
		if card != cards.RoomCard(cards.Hall) {
			t.Errorf("expected Hall, got %v", card)
		}
	})

	t.Run("the random chooser only picks matching cards", func(t *testing.T) {
		s := cards.Suggestion{Suspect: cards.Green, Weapon: cards.Rope, Room: cards.Hall}
		chooser := NewRandomChooser(rand.New(rand.NewSource(3)))
		for range 20 {
			card, ok := p.ChooseCardToShow(s, chooser)
			if !ok || !s.Contains(card) {
				t.Fatalf("random chooser revealed %v", card)
			}
		}
	})

	t.Run("it cannot refute without a match", func(t *testing.T) {
		s := cards.Suggestion{Suspect: cards.Green, Weapon: cards.Dagger, Room: cards.Study}
		if _, ok := p.ChooseCardToShow(s, &DeterministicChooser{}); ok {
			t.Error("expected no card to be shown")
		}
	})
}

func TestClone(t *testing.T) {
	p := New("Bob")
	p.ReceiveHand([]cards.Card{cards.RoomCard(cards.Study)})
	c := p.Clone()
	c.Cards[0] = cards.RoomCard(cards.Hall)
	if p.Cards[0] != cards.RoomCard(cards.Study) {
		t.Error("mutating the clone changed the original hand")
	}
}

func TestHoldsAndMatching(t *testing.T) {
	// GIVEN a player dealt the Rope and the Study
	p := New("Carol")
	p.ReceiveHand([]cards.Card{cards.RoomCard(cards.Study), cards.WeaponCard(cards.Rope)})

	if !p.Holds(cards.WeaponCard(cards.Rope)) || p.Holds(cards.WeaponCard(cards.Dagger)) {
		t.Errorf("Holds disagrees with the hand %v", p.Cards)
	}

	// WHEN both held cards are suggested
	s := cards.Suggestion{Suspect: cards.Plum, Weapon: cards.Rope, Room: cards.Study}
	got := p.Matching(s)

	// THEN they come back in suspect, weapon, room order
	want := []cards.Card{cards.WeaponCard(cards.Rope), cards.RoomCard(cards.Study)}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}

	p.Discard()
	if p.Holds(cards.WeaponCard(cards.Rope)) {
		t.Error("a discarded hand should hold nothing")
	}
}
