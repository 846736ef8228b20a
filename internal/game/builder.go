package game

import (
	"math/rand"

	"example.com/cluedo-server/internal/deck"
	"example.com/cluedo-server/internal/events"
	"example.com/cluedo-server/internal/player"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EngineBuilder provides a step-by-step API for constructing an Engine.
type EngineBuilder struct {
	log          logrus.FieldLogger
	rand         *rand.Rand
	eventManager *events.Manager
	chooser      player.Chooser
	newID        func() string
}

// NewBuilder creates a new EngineBuilder with its required dependencies.
func NewBuilder(logger logrus.FieldLogger, rand *rand.Rand) *EngineBuilder {
	return &EngineBuilder{
		log:  logger,
		rand: rand,
	}
}

// WithEventManager shares an existing bus instead of creating a private one.
func (b *EngineBuilder) WithEventManager(em *events.Manager) *EngineBuilder {
	b.eventManager = em
	return b
}

// WithChooser sets how refuting players pick which matching card to reveal.
func (b *EngineBuilder) WithChooser(c player.Chooser) *EngineBuilder {
	b.chooser = c
	return b
}

// WithIDGenerator overrides the game id source (uuid by default).
func (b *EngineBuilder) WithIDGenerator(f func() string) *EngineBuilder {
	b.newID = f
	return b
}

// Build constructs an empty Engine after all options have been configured.
func (b *EngineBuilder) Build() *Engine {
	e := &Engine{
		players:      []*player.Player{},
		dealer:       deck.NewDealer(rand.New(rand.NewSource(b.rand.Int63()))),
		chooser:      b.chooser,
		eventManager: b.eventManager,
		log:          b.log,
		newID:        b.newID,
	}
	if e.chooser == nil {
		e.chooser = player.NewRandomChooser(rand.New(rand.NewSource(b.rand.Int63())))
	}
	if e.eventManager == nil {
		e.eventManager = events.NewManager()
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	return e
}
