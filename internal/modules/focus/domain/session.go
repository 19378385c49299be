package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "timeaify/internal/platform/errors"
)

const (
	SchemaVersion = 1

	MinDurationMinutes = 1
	MaxDurationMinutes = 120
)

type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

type BlockedAttempt struct {
	Identifier string
	At         time.Time
}

// Session is one focus interval. EndedAt is the zero time until the session
// is finalized; DurationMin stays 0 until then.
type Session struct {
	ID              string
	PlannedMinutes  int
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMin     float64
	Completed       bool
	BlockedAttempts []BlockedAttempt
}

func NewSession(id string, plannedMinutes int, now time.Time) Session {
	return Session{ID: id, PlannedMinutes: plannedMinutes, StartedAt: now}
}

func (s Session) Finalized() bool {
	return !s.EndedAt.IsZero()
}

// Finalize stamps the end time and derives the wall-clock duration in
// fractional minutes. A clock that went backwards yields 0.
func (s Session) Finalize(now time.Time, completed bool) Session {
	s.EndedAt = now
	s.Completed = completed
	s.DurationMin = now.Sub(s.StartedAt).Minutes()
	if s.DurationMin < 0 {
		s.DurationMin = 0
	}
	return s
}

func (s Session) Clone() Session {
	if s.BlockedAttempts != nil {
		s.BlockedAttempts = append([]BlockedAttempt(nil), s.BlockedAttempts...)
	}
	return s
}

func ValidateDuration(minutes int) error {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return fmt.Errorf("%w: %d minutes is outside %d..%d", apperrors.ErrInvalidDuration, minutes, MinDurationMinutes, MaxDurationMinutes)
	}
	return nil
}

// ParseDuration accepts whole minutes only; "25.5" and "abc" are rejected
// the same way as out-of-range values.
func ParseDuration(raw string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number of minutes", apperrors.ErrInvalidDuration, raw)
	}
	if err := ValidateDuration(minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}
