package events

import (
	"sync"

	"example.com/cluedo-server/internal/cards"
)

// Event is a marker interface for all event types.
type Event interface {
	Type() string
}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Manager (or Event Bus) manages listeners and dispatches events. It is safe
// for concurrent use; listeners are called synchronously from Publish and
// must not block.
type Manager struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]Listener
	order     []int
}

func NewManager() *Manager {
	return &Manager{listeners: make(map[int]Listener)}
}

// Subscribe registers l and returns a function that removes it again.
func (em *Manager) Subscribe(l Listener) (unsubscribe func()) {
	em.mu.Lock()
	defer em.mu.Unlock()
	id := em.nextID
	em.nextID++
	em.listeners[id] = l
	em.order = append(em.order, id)
	return func() {
		em.mu.Lock()
		defer em.mu.Unlock()
		delete(em.listeners, id)
		for i, o := range em.order {
			if o == id {
				em.order = append(em.order[:i], em.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers e to every listener in subscription order.
func (em *Manager) Publish(e Event) {
	em.mu.RLock()
	targets := make([]Listener, 0, len(em.order))
	for _, id := range em.order {
		targets = append(targets, em.listeners[id])
	}
	em.mu.RUnlock()

	for _, l := range targets {
		l.HandleEvent(e)
	}
}

// --- Engine lifecycle events ---

type PlayerJoinedEvent struct {
	PlayerName string `json:"player"`
}

type PlayerLeftEvent struct {
	PlayerName string `json:"player"`
	MidGame    bool   `json:"midGame"`
}

// GameStartedEvent is published once the solution is fixed and cards are dealt.
// Hands are deliberately absent: listeners may be remote.
type GameStartedEvent struct {
	GameID    string         `json:"gameId"`
	Players   []string       `json:"players"`
	HandSizes map[string]int `json:"handSizes"`
}

type GameResetEvent struct {
	GameID string `json:"gameId"`
}

// --- Resolution events ---

// SuggestionResolvedEvent reports who disproved a suggestion. The revealed card
// is only known to the suggester and is not part of the event.
type SuggestionResolvedEvent struct {
	SuggesterName string           `json:"suggester"`
	Suggestion    cards.Suggestion `json:"suggestion"`
	DisproverName string           `json:"disprover,omitempty"` // Empty if no one disproved
}

type AccusationResolvedEvent struct {
	Accusation cards.Suggestion `json:"accusation"`
	IsCorrect  bool             `json:"correct"`
}

// --- Table events, published by whoever runs the turns ---

type TurnStartEvent struct {
	TurnNumber int    `json:"turn"`
	PlayerName string `json:"player"`
}

// AccusationMadeEvent names the accuser; the engine's AccusationResolvedEvent
// follows it with the verdict.
type AccusationMadeEvent struct {
	PlayerName string           `json:"player"`
	Accusation cards.Suggestion `json:"accusation"`
}

type GameOverEvent struct {
	Winner     string           `json:"winner,omitempty"` // Empty if nobody solved the case
	Solution   cards.Suggestion `json:"solution"`
	Turns      int              `json:"turns"`
	Eliminated []string         `json:"eliminated,omitempty"`
}

func (PlayerJoinedEvent) Type() string       { return "player_joined" }
func (PlayerLeftEvent) Type() string         { return "player_left" }
func (GameStartedEvent) Type() string        { return "game_started" }
func (GameResetEvent) Type() string          { return "game_reset" }
func (SuggestionResolvedEvent) Type() string { return "suggestion_resolved" }
func (AccusationResolvedEvent) Type() string { return "accusation_resolved" }
func (TurnStartEvent) Type() string          { return "turn_start" }
func (AccusationMadeEvent) Type() string     { return "accusation_made" }
func (GameOverEvent) Type() string           { return "game_over" }
