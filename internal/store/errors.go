package store

import "errors"

// Sentinel errors surfaced to the adapters, which translate them into
// exit codes or HTTP statuses.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrNoUpdates         = errors.New("no fields to update")
	ErrNoActiveSession   = errors.New("no active session")
	ErrSessionActive     = errors.New("session already running or paused")
	ErrSessionNotRunning = errors.New("no running session")
	ErrSessionNotPaused  = errors.New("no paused session")
)
