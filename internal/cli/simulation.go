package cli

import (
	"fmt"
	"math/rand"
	"time"

	"example.com/cluedo-server/internal/ai"
	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/events"
	"example.com/cluedo-server/internal/game"
	"example.com/cluedo-server/internal/player"

	"github.com/sirupsen/logrus"
)

// Simulation seats a table of bots on an engine and plays the game out.
type Simulation struct {
	engine     *game.Engine
	bots       []*ai.Bot
	log        logrus.FieldLogger
	turnLimit  int
	delay      time.Duration
	turn       int
	eliminated map[string]bool
}

// Result summarises a finished simulation.
type Result struct {
	Winner     string // Empty if nobody solved the case
	Turns      int
	Solution   cards.Suggestion
	Eliminated []string
}

// NewSimulation registers numBots bots on an empty engine and starts the game.
func NewSimulation(engine *game.Engine, logger logrus.FieldLogger, rng *rand.Rand, numBots, turnLimit int, delay time.Duration) (*Simulation, error) {
	suspects := cards.Suspects()
	if numBots < game.MinPlayers || numBots > len(suspects) {
		return nil, fmt.Errorf("invalid number of bots %d, want %d-%d", numBots, game.MinPlayers, len(suspects))
	}

	// 1. Create and shuffle player names
	names := make([]string, numBots)
	for i := range names {
		names[i] = string(suspects[i])
	}
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	// 2. Register them and deal
	for _, name := range names {
		if _, err := engine.AddPlayer(name); err != nil {
			return nil, fmt.Errorf("seat %s: %w", name, err)
		}
	}
	state, err := engine.StartGame()
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	// 3. Create bots, each with its own random source, and hand them their cards
	sim := &Simulation{
		engine:     engine,
		log:        logger,
		turnLimit:  turnLimit,
		delay:      delay,
		eliminated: make(map[string]bool),
	}
	for _, p := range state.Players {
		botRand := rand.New(rand.NewSource(rng.Int63()))
		bot := ai.NewBot(logger, botRand, player.NewRandomChooser(botRand), p.Name, names)
		bot.ReceiveHand(p.Cards)
		sim.bots = append(sim.bots, bot)
	}
	return sim, nil
}

// Bots returns the seated bots in turn order.
func (s *Simulation) Bots() []*ai.Bot { return s.bots }

// Run executes the main game loop until a correct accusation, until every
// player has been eliminated, or until the turn limit is reached.
func (s *Simulation) Run() (Result, error) {
	em := s.engine.EventManager()
	for s.turn < s.turnLimit && len(s.eliminated) < len(s.bots) {
		current := s.bots[s.turn%len(s.bots)]
		if s.eliminated[current.Name()] {
			s.turn++
			continue
		}
		em.Publish(events.TurnStartEvent{TurnNumber: s.turn + 1, PlayerName: current.Name()})

		if accusation, ok := current.ShouldAccuse(); ok {
			em.Publish(events.AccusationMadeEvent{PlayerName: current.Name(), Accusation: accusation})
			correct, err := s.engine.Accuse(accusation)
			if err != nil {
				return Result{}, fmt.Errorf("turn %d: %w", s.turn+1, err)
			}
			if correct {
				s.turn++
				return s.finish(current.Name()), nil
			}
			s.log.WithField("player", current.Name()).Warn("Wrong accusation; player eliminated")
			s.eliminated[current.Name()] = true
			s.turn++
			continue
		}

		if err := s.suggest(current); err != nil {
			return Result{}, fmt.Errorf("turn %d: %w", s.turn+1, err)
		}
		s.turn++
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}
	return s.finish(""), nil
}

// suggest resolves one suggestion and lets every bot learn from it. Only the
// suggester gets to see the revealed card.
func (s *Simulation) suggest(current *ai.Bot) error {
	suggestion := current.MakeSuggestion()
	result, err := s.engine.Refute(suggestion, current.Name())
	if err != nil {
		return err
	}
	for _, b := range s.bots {
		var revealed *cards.Card
		if b.Name() == current.Name() {
			revealed = result.Card
		}
		b.Observe(current.Name(), suggestion, result.Refuter, revealed)
	}
	return nil
}

func (s *Simulation) finish(winner string) Result {
	state := s.engine.State()
	result := Result{Winner: winner, Turns: s.turn}
	if state.Solution != nil {
		result.Solution = *state.Solution
	}
	for _, b := range s.bots {
		if s.eliminated[b.Name()] {
			result.Eliminated = append(result.Eliminated, b.Name())
		}
	}
	s.engine.EventManager().Publish(events.GameOverEvent{
		Winner:     result.Winner,
		Solution:   result.Solution,
		Turns:      result.Turns,
		Eliminated: result.Eliminated,
	})
	return result
}
