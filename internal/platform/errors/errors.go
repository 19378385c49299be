package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidBlockItem    = errors.New("invalid block item")

	// ErrClockAlreadyRunning reports a controller bug: the session clock was
	// started twice without an intervening stop.
	ErrClockAlreadyRunning = errors.New("session clock already running")
)
