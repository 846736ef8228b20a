package game

import (
	"errors"
	"testing"

	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/player"
)

// setupKnownGame builds an active game with a fixed solution and fixed hands,
// removing all randomness from the test setup.
func setupKnownGame(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t, 1)

	solution := cards.Suggestion{Suspect: cards.Peacock, Weapon: cards.LeadPipe, Room: cards.Kitchen}
	hands := map[string][]cards.Card{
		"Alice": {
			cards.SuspectCard(cards.Mustard), cards.SuspectCard(cards.Plum), cards.WeaponCard(cards.Rope),
			cards.RoomCard(cards.Ballroom), cards.RoomCard(cards.DiningRoom), cards.RoomCard(cards.Lounge),
		},
		"Bob": {
			cards.SuspectCard(cards.Green), cards.RoomCard(cards.Hall), cards.RoomCard(cards.Conservatory),
			cards.WeaponCard(cards.Wrench), cards.RoomCard(cards.Study), cards.RoomCard(cards.BilliardRoom),
		},
		"Carol": {
			cards.SuspectCard(cards.Scarlett), cards.SuspectCard(cards.Orchid), cards.WeaponCard(cards.Dagger),
			cards.WeaponCard(cards.Candlestick), cards.WeaponCard(cards.Revolver), cards.RoomCard(cards.Library),
		},
	}
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		p := player.New(name)
		p.ReceiveHand(hands[name])
		e.players = append(e.players, p)
	}
	e.solution = &solution
	e.gameID = "known"
	return e
}

func TestRefute(t *testing.T) {
	e := setupKnownGame(t)

	t.Run("the next player in turn order refutes first", func(t *testing.T) {
		// Bob (Hall) and Carol (Dagger) can both refute Alice; Bob sits first.
		s := cards.Suggestion{Suspect: cards.Peacock, Weapon: cards.Dagger, Room: cards.Hall}
		r, err := e.Refute(s, "Alice")
		if err != nil {
			t.Fatalf("Refute: %v", err)
		}
		if !r.Refuted || r.Refuter != "Bob" || *r.Card != cards.RoomCard(cards.Hall) {
			t.Errorf("expected Bob to show the Hall, got %+v", r)
		}
	})

	t.Run("turn order wraps around the table", func(t *testing.T) {
		// Alice (Rope) and Bob (Green) can refute Carol; Alice sits first after Carol.
		s := cards.Suggestion{Suspect: cards.Green, Weapon: cards.Rope, Room: cards.Kitchen}
		r, err := e.Refute(s, "Carol")
		if err != nil {
			t.Fatalf("Refute: %v", err)
		}
		if r.Refuter != "Alice" || *r.Card != cards.WeaponCard(cards.Rope) {
			t.Errorf("expected Alice to show the Rope, got %+v", r)
		}
	})

	t.Run("the suggester never refutes their own suggestion", func(t *testing.T) {
		// Only Alice holds any of these cards.
		s := cards.Suggestion{Suspect: cards.Mustard, Weapon: cards.Rope, Room: cards.Kitchen}
		r, err := e.Refute(s, "Alice")
		if err != nil {
			t.Fatalf("Refute: %v", err)
		}
		if r.Refuted {
			t.Errorf("expected the suggestion to stand, got %+v", r)
		}
	})

	t.Run("the solution is never refuted", func(t *testing.T) {
		for _, suggester := range []string{"Alice", "Bob", "Carol"} {
			s := cards.Suggestion{Suspect: cards.Peacock, Weapon: cards.LeadPipe, Room: cards.Kitchen}
			r, err := e.Refute(s, suggester)
			if err != nil {
				t.Fatalf("Refute: %v", err)
			}
			if r.Refuted {
				t.Errorf("%s: solution was refuted by %s", suggester, r.Refuter)
			}
		}
	})

	t.Run("a refuter with several matches reveals exactly one", func(t *testing.T) {
		s := cards.Suggestion{Suspect: cards.Scarlett, Weapon: cards.Dagger, Room: cards.Library}
		r, err := e.Refute(s, "Bob")
		if err != nil {
			t.Fatalf("Refute: %v", err)
		}
		// DeterministicChooser picks the alphabetically first name.
		if r.Refuter != "Carol" || *r.Card != cards.WeaponCard(cards.Dagger) {
			t.Errorf("expected Carol to show the Dagger, got %+v", r)
		}
	})

	t.Run("an unknown suggester is rejected", func(t *testing.T) {
		s := cards.Suggestion{Suspect: cards.Peacock, Weapon: cards.LeadPipe, Room: cards.Kitchen}
		if _, err := e.Refute(s, "Mallory"); !errors.Is(err, ErrUnknownPlayer) {
			t.Errorf("expected ErrUnknownPlayer, got %v", err)
		}
	})
}

func TestRefuteUnrefutedIffNoIntersection(t *testing.T) {
	e := setupKnownGame(t)
	players := e.ListPlayers()

	for _, suspect := range cards.Suspects() {
		for _, weapon := range cards.Weapons() {
			for _, room := range cards.Rooms() {
				s := cards.Suggestion{Suspect: suspect, Weapon: weapon, Room: room}
				for i, suggester := range players {
					r, err := e.Refute(s, suggester.Name)
					if err != nil {
						t.Fatalf("Refute: %v", err)
					}

					// Expected refuter: first other player, in turn order, holding a card.
					want := ""
					for k := 1; k < len(players) && want == ""; k++ {
						candidate := players[(i+k)%len(players)]
						if len(candidate.Matching(s)) > 0 {
							want = candidate.Name
						}
					}
					if r.Refuter != want || r.Refuted != (want != "") {
						t.Fatalf("%s suggests %s: expected refuter %q, got %+v", suggester.Name, s, want, r)
					}
					if r.Refuted && !s.Contains(*r.Card) {
						t.Fatalf("revealed card %v is not part of %s", *r.Card, s)
					}
				}
			}
		}
	}
}

func TestAccuse(t *testing.T) {
	e := setupKnownGame(t)
	solution := cards.Suggestion{Suspect: cards.Peacock, Weapon: cards.LeadPipe, Room: cards.Kitchen}

	t.Run("the exact solution is correct", func(t *testing.T) {
		correct, err := e.Accuse(solution)
		if err != nil || !correct {
			t.Errorf("expected a correct accusation, got %v (%v)", correct, err)
		}
	})

	t.Run("any single field mismatch is incorrect", func(t *testing.T) {
		wrong := []cards.Suggestion{
			{Suspect: cards.Plum, Weapon: solution.Weapon, Room: solution.Room},
			{Suspect: solution.Suspect, Weapon: cards.Rope, Room: solution.Room},
			{Suspect: solution.Suspect, Weapon: solution.Weapon, Room: cards.Study},
		}
		for _, s := range wrong {
			correct, err := e.Accuse(s)
			if err != nil {
				t.Fatalf("Accuse: %v", err)
			}
			if correct {
				t.Errorf("expected %s to be incorrect", s)
			}
		}
	})
}

func TestResolverNeedsAnActiveGame(t *testing.T) {
	e := newTestEngine(t, 1)
	mustAdd(t, e, "Alice", "Bob")
	s := cards.Suggestion{Suspect: cards.Plum, Weapon: cards.Rope, Room: cards.Hall}

	if _, err := e.Refute(s, "Alice"); !errors.Is(err, ErrGameNotActive) {
		t.Errorf("Refute: expected ErrGameNotActive, got %v", err)
	}
	if _, err := e.Accuse(s); !errors.Is(err, ErrGameNotActive) {
		t.Errorf("Accuse: expected ErrGameNotActive, got %v", err)
	}
}

type panickingChooser struct{}

func (panickingChooser) Choose([]cards.Card) cards.Card { panic("boom") }

func TestPanicPoisonsEngine(t *testing.T) {
	// GIVEN a game whose chooser panics inside the critical section
	e := setupKnownGame(t)
	e.chooser = panickingChooser{}

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("expected the original panic to propagate, got %v", r)
			}
		}()
		s := cards.Suggestion{Suspect: cards.Green, Weapon: cards.Rope, Room: cards.Hall}
		_, _ = e.Refute(s, "Alice")
	}()

	// THEN every later operation fails fatally instead of reading corrupt state
	defer func() {
		if r := recover(); r != ErrPoisoned {
			t.Errorf("expected ErrPoisoned, got %v", r)
		}
	}()
	e.ListPlayers()
	t.Error("ListPlayers returned on a poisoned engine")
}
