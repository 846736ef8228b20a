package cards

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Run("it has 6 suspects, 6 weapons and 9 rooms", func(t *testing.T) {
		if len(Suspects()) != 6 || len(Weapons()) != 6 || len(Rooms()) != 9 {
			t.Errorf("unexpected catalog sizes: %d/%d/%d", len(Suspects()), len(Weapons()), len(Rooms()))
		}
		if len(All()) != DeckSize {
			t.Errorf("expected %d cards in the deck, got %d", DeckSize, len(All()))
		}
	})

	t.Run("every card is unique", func(t *testing.T) {
		seen := make(map[Card]bool)
		for _, c := range All() {
			if seen[c] {
				t.Errorf("card %v appears twice", c)
			}
			seen[c] = true
		}
	})

	t.Run("equality includes the category", func(t *testing.T) {
		if SuspectCard(Plum) != (Card{Category: CategorySuspect, Name: "Plum"}) {
			t.Error("expected structurally equal cards to compare equal")
		}
		if (Card{Category: CategoryRoom, Name: "Plum"}) == SuspectCard(Plum) {
			t.Error("cards of different categories must not be equal")
		}
	})
}

func TestParse(t *testing.T) {
	if s, err := ParseSuspect("Scarlett"); err != nil || s != Scarlett {
		t.Errorf("expected Scarlett, got %q (%v)", s, err)
	}

	// Matching is case-sensitive.
	_, err := ParseWeapon("rope")
	if !errors.Is(err, ErrUnknownCard) {
		t.Errorf("expected ErrUnknownCard for lowercase weapon, got %v", err)
	}

	if _, err := ParseRoom("Cellar"); err == nil {
		t.Error("expected an error for a room outside the catalog")
	}
}

func TestSuggestionJSON(t *testing.T) {
	t.Run("it decodes known values", func(t *testing.T) {
		var s Suggestion
		err := json.Unmarshal([]byte(`{"suspect":"Green","weapon":"LeadPipe","room":"DiningRoom"}`), &s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Suggestion{Suspect: Green, Weapon: LeadPipe, Room: DiningRoom}
		if s != want {
			t.Errorf("expected %+v, got %+v", want, s)
		}
	})

	t.Run("it rejects unknown values", func(t *testing.T) {
		var s Suggestion
		err := json.Unmarshal([]byte(`{"suspect":"White","weapon":"Rope","room":"Hall"}`), &s)
		if !errors.Is(err, ErrUnknownCard) {
			t.Errorf("expected ErrUnknownCard, got %v", err)
		}
	})

	t.Run("validate catches missing fields", func(t *testing.T) {
		var s Suggestion
		if err := json.Unmarshal([]byte(`{"suspect":"Plum"}`), &s); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if err := s.Validate(); err == nil {
			t.Error("expected Validate to fail on an incomplete suggestion")
		}
	})
}

func TestCardJSON(t *testing.T) {
	data, err := json.Marshal(WeaponCard(Revolver))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"Weapon":"Revolver"}` {
		t.Errorf("unexpected encoding %s", data)
	}

	var c Card
	if err := json.Unmarshal([]byte(`{"Room":"Study"}`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != RoomCard(Study) {
		t.Errorf("expected Study room card, got %+v", c)
	}

	if err := json.Unmarshal([]byte(`{"Room":"Rope"}`), &c); err == nil {
		t.Error("expected a weapon name under the Room tag to be rejected")
	}
}

func TestFromCards(t *testing.T) {
	s, err := FromCards(RoomCard(Hall), SuspectCard(Orchid), WeaponCard(Dagger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != (Suggestion{Suspect: Orchid, Weapon: Dagger, Room: Hall}) {
		t.Errorf("unexpected suggestion %+v", s)
	}

	if _, err := FromCards(RoomCard(Hall), RoomCard(Study), WeaponCard(Dagger)); err == nil {
		t.Error("expected two rooms to be rejected")
	}
}
