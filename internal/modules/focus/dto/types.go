package dto

import "time"

type BlockedAttemptOutput struct {
	Identifier string
	At         time.Time
}

type SessionOutput struct {
	ID              string
	PlannedMinutes  int
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMin     float64
	Completed       bool
	BlockedAttempts []BlockedAttemptOutput
}

type StatusOutput struct {
	Active          bool
	Progress        float64
	DurationMinutes int
	Epoch           uint64
	TickInterval    time.Duration
	Current         SessionOutput
}

type TickInput struct {
	Epoch uint64
	At    time.Time
}

type TickOutput struct {
	Progress float64
	// Reschedule is false once the tick is stale or finished the session.
	Reschedule bool
	Completed  bool
	Session    SessionOutput
}

type AttemptOutput struct {
	Identifier string
	Blocked    bool
	Recorded   bool
}

type ExportOutput struct {
	Path     string
	Sessions int
}
