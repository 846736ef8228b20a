package deck

import (
	"errors"
	"math/rand"

	"example.com/cluedo-server/internal/cards"
)

// ErrNoPlayers is returned when asked to deal to an empty table.
var ErrNoPlayers = errors.New("cannot deal to zero players")

// Deal is the result of dealing a game: the hidden solution and one hand per
// seat, in the seat order the dealer was given.
type Deal struct {
	Solution cards.Suggestion
	Hands    [][]cards.Card
}

// Dealer picks solutions and deals hands from an injected random source so
// that a fixed seed reproduces the same game. It is not safe for concurrent use.
type Dealer struct {
	rng *rand.Rand
}

// NewDealer creates a dealer drawing from rng.
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{rng: rng}
}

// Deal chooses a solution and distributes the remaining cards among
// seats players. Hand sizes differ by at most one; the first seats receive
// the surplus.
func (d *Dealer) Deal(seats int) (Deal, error) {
	if seats < 1 {
		return Deal{}, ErrNoPlayers
	}
	solution := d.ChooseSolution()
	residual := Residual(solution)
	d.Shuffle(residual)
	return Deal{Solution: solution, Hands: RoundRobin(residual, seats)}, nil
}

// ChooseSolution draws one suspect, one weapon and one room independently.
func (d *Dealer) ChooseSolution() cards.Suggestion {
	suspects := cards.Suspects()
	weapons := cards.Weapons()
	rooms := cards.Rooms()
	return cards.Suggestion{
		Suspect: suspects[d.rng.Intn(len(suspects))],
		Weapon:  weapons[d.rng.Intn(len(weapons))],
		Room:    rooms[d.rng.Intn(len(rooms))],
	}
}

// Shuffle permutes deck in place using Fisher-Yates.
func (d *Dealer) Shuffle(deck []cards.Card) {
	for i := len(deck) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Residual returns the full deck minus the three solution cards, in catalog order.
func Residual(solution cards.Suggestion) []cards.Card {
	all := cards.All()
	out := make([]cards.Card, 0, len(all)-3)
	for _, c := range all {
		if !solution.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// RoundRobin walks deck once: len(deck)/seats full rounds in seat order, then
// one extra card for each of the first len(deck)%seats seats.
func RoundRobin(deck []cards.Card, seats int) [][]cards.Card {
	hands := make([][]cards.Card, seats)
	base := len(deck) / seats
	extra := len(deck) % seats

	next := 0
	for range base {
		for seat := range seats {
			hands[seat] = append(hands[seat], deck[next])
			next++
		}
	}
	for seat := range extra {
		hands[seat] = append(hands[seat], deck[next])
		next++
	}
	return hands
}
