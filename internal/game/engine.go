package game

import (
	"fmt"
	"sync"

	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/deck"
	"example.com/cluedo-server/internal/events"
	"example.com/cluedo-server/internal/player"

	"github.com/sirupsen/logrus"
)

// MinPlayers is the smallest table a game can be started with.
const MinPlayers = 2

// Engine owns the single game of the process: the roster, the hidden solution
// and every hand. All operations are serialized on one mutex; events are
// published only after that lock is released. Operations that publish also
// hold publishMu across the state change and the publish, so listeners see
// events in the order the changes happened; listeners must not call back
// into those operations.
type Engine struct {
	mu        sync.Mutex
	publishMu sync.Mutex
	poisoned  bool

	players  []*player.Player
	solution *cards.Suggestion
	gameID   string

	dealer       *deck.Dealer
	chooser      player.Chooser
	eventManager *events.Manager
	log          logrus.FieldLogger
	newID        func() string
}

// State is a deep copy of the engine's state. Solution is nil until a game
// has been started.
type State struct {
	GameID   string            `json:"gameId,omitempty"`
	Players  []player.Player   `json:"players"`
	Solution *cards.Suggestion `json:"solution"`
}

// Active reports whether a game is in progress.
func (s State) Active() bool { return s.Solution != nil }

// EventManager is a public getter for the unexported field.
func (e *Engine) EventManager() *events.Manager {
	return e.eventManager
}

// lock enters the critical section, refusing to run on a poisoned engine.
func (e *Engine) lock() {
	e.mu.Lock()
	if e.poisoned {
		e.mu.Unlock()
		panic(ErrPoisoned)
	}
}

// unlock must be deferred directly after lock so that it observes a panic
// raised inside the critical section.
func (e *Engine) unlock() {
	if r := recover(); r != nil {
		e.poisoned = true
		e.mu.Unlock()
		panic(r)
	}
	e.mu.Unlock()
}

// AddPlayer registers a new player with an empty hand.
func (e *Engine) AddPlayer(name string) (player.Player, error) {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	p, midGame, err := e.addPlayer(name)
	if err != nil {
		return player.Player{}, err
	}
	if midGame {
		e.log.WithField("player", name).Warn("Player joined a game in progress; they hold no cards")
	}
	e.eventManager.Publish(events.PlayerJoinedEvent{PlayerName: name})
	return p, nil
}

func (e *Engine) addPlayer(name string) (player.Player, bool, error) {
	e.lock()
	defer e.unlock()

	if e.indexOf(name) >= 0 {
		return player.Player{}, false, fmt.Errorf("add %q: %w", name, ErrDuplicatePlayer)
	}
	p := player.New(name)
	e.players = append(e.players, p)
	e.log.WithField("player", name).Debug("Player added")
	return p.Clone(), e.solution != nil, nil
}

// RemovePlayer drops a player from the roster. During a game their cards are
// discarded, which breaks the dealt-deck invariant; callers should treat that
// as abnormal.
func (e *Engine) RemovePlayer(name string) error {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	midGame, err := e.removePlayer(name)
	if err != nil {
		return err
	}
	e.eventManager.Publish(events.PlayerLeftEvent{PlayerName: name, MidGame: midGame})
	return nil
}

func (e *Engine) removePlayer(name string) (bool, error) {
	e.lock()
	defer e.unlock()

	idx := e.indexOf(name)
	if idx < 0 {
		return false, fmt.Errorf("remove %q: %w", name, ErrUnknownPlayer)
	}
	midGame := e.solution != nil
	if midGame {
		e.log.WithFields(logrus.Fields{"game": e.gameID, "player": name, "discarded": len(e.players[idx].Cards)}).
			Warn("Player removed from a game in progress; their cards are discarded")
	}
	e.players[idx].Discard()
	e.players = append(e.players[:idx], e.players[idx+1:]...)
	return midGame, nil
}

// ListPlayers returns the roster in the order players joined.
func (e *Engine) ListPlayers() []player.Player {
	e.lock()
	defer e.unlock()
	return e.snapshotPlayers()
}

// GetPlayer returns a single player, hand included.
func (e *Engine) GetPlayer(name string) (player.Player, error) {
	e.lock()
	defer e.unlock()

	idx := e.indexOf(name)
	if idx < 0 {
		return player.Player{}, fmt.Errorf("get %q: %w", name, ErrUnknownPlayer)
	}
	return e.players[idx].Clone(), nil
}

// State returns a snapshot of the whole game, solution included.
func (e *Engine) State() State {
	e.lock()
	defer e.unlock()
	return e.snapshot()
}

// StartGame fixes the solution and deals the remaining cards to the roster in
// join order.
func (e *Engine) StartGame() (State, error) {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	state, err := e.startGame()
	if err != nil {
		return State{}, err
	}

	names := make([]string, len(state.Players))
	sizes := make(map[string]int, len(state.Players))
	for i, p := range state.Players {
		names[i] = p.Name
		sizes[p.Name] = len(p.Cards)
	}
	e.eventManager.Publish(events.GameStartedEvent{GameID: state.GameID, Players: names, HandSizes: sizes})
	return state, nil
}

func (e *Engine) startGame() (State, error) {
	e.lock()
	defer e.unlock()

	if e.solution != nil {
		return State{}, fmt.Errorf("start: %w", ErrGameAlreadyActive)
	}
	if len(e.players) < MinPlayers {
		return State{}, fmt.Errorf("start with %d player(s): %w", len(e.players), ErrInsufficientPlayers)
	}

	deal, err := e.dealer.Deal(len(e.players))
	if err != nil {
		return State{}, fmt.Errorf("start: %w", err)
	}
	for i, p := range e.players {
		p.ReceiveHand(deal.Hands[i])
		e.log.Debugf("%s Hand: %v", p.Name, deal.Hands[i])
	}
	solution := deal.Solution
	e.solution = &solution
	e.gameID = e.newID()

	e.log.WithFields(logrus.Fields{"game": e.gameID, "players": len(e.players)}).Info("Game started")
	e.log.WithField("game", e.gameID).Debugf("Ground Truth Initialized. Solution: %+v", solution)
	return e.snapshot(), nil
}

// ResetGame ends the game in progress and clears the roster. Resetting when
// no game was started fails and leaves the roster untouched.
func (e *Engine) ResetGame() error {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	gameID, err := e.resetGame()
	if err != nil {
		return err
	}
	e.eventManager.Publish(events.GameResetEvent{GameID: gameID})
	return nil
}

func (e *Engine) resetGame() (string, error) {
	e.lock()
	defer e.unlock()

	if e.solution == nil {
		return "", fmt.Errorf("reset: %w", ErrGameNotActive)
	}
	gameID := e.gameID
	e.players = []*player.Player{}
	e.solution = nil
	e.gameID = ""
	e.log.WithField("game", gameID).Info("Game reset")
	return gameID, nil
}

// indexOf returns the roster position of name, or -1. Caller holds the lock.
func (e *Engine) indexOf(name string) int {
	for i, p := range e.players {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (e *Engine) snapshotPlayers() []player.Player {
	out := make([]player.Player, len(e.players))
	for i, p := range e.players {
		out[i] = p.Clone()
	}
	return out
}

func (e *Engine) snapshot() State {
	s := State{GameID: e.gameID, Players: e.snapshotPlayers()}
	if e.solution != nil {
		solution := *e.solution
		s.Solution = &solution
	}
	return s
}
