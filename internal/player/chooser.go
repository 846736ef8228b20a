package player

import (
	"math/rand"
	"sort"
	"sync"

	"example.com/cluedo-server/internal/cards"
)

// Chooser selects the card a refuting player reveals when more than one of
// their cards matches a suggestion.
type Chooser interface {
	Choose(options []cards.Card) cards.Card
}

// RandomChooser picks uniformly among the options.
type RandomChooser struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(options []cards.Card) cards.Card {
	if len(options) == 0 {
		return cards.Card{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return options[r.rand.Intn(len(options))]
}

// DeterministicChooser always picks the alphabetically first card name.
// This is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(options []cards.Card) cards.Card {
	if len(options) == 0 {
		return cards.Card{}
	}
	sorted := append([]cards.Card(nil), options...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted[0]
}
