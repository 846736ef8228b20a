package game

import "errors"

// Expected, caller-recoverable failures. The engine never mutates state when it
// returns one of these.
var (
	ErrDuplicatePlayer     = errors.New("player already exists")
	ErrUnknownPlayer       = errors.New("no such player")
	ErrGameAlreadyActive   = errors.New("a game is already in progress")
	ErrGameNotActive       = errors.New("no game in progress")
	ErrInsufficientPlayers = errors.New("at least 2 players are required")
)

// ErrPoisoned is the panic value raised by every operation after a panic
// escaped a critical section. The state behind the lock can no longer be
// trusted and the engine never recovers; transports must stop serving it
// (the HTTP API answers 503 engine_poisoned from then on).
var ErrPoisoned = errors.New("game engine poisoned by an earlier panic")
