package domain

import (
	"time"

	apperrors "timeaify/internal/platform/errors"
)

const DefaultTickInterval = time.Second

// Tick is the outcome of delivering one clock tick.
type Tick struct {
	Epoch    uint64
	Progress float64
	// Stale is set when the tick belongs to a stopped run and was ignored.
	Stale bool
	// Done is set on the tick that carried progress to 100.
	Done bool
}

// SessionClock is a cooperative timer. It never schedules anything itself:
// the host delivers Tick calls one at a time and schedules the next only
// after the previous returns. Every Start opens a new epoch and Stop closes
// it, so a tick issued for an earlier run is recognised and dropped.
//
// Progress is derived from elapsed time rather than accumulated increments,
// so late or skipped ticks do not drift.
type SessionClock struct {
	interval  time.Duration
	running   bool
	epoch     uint64
	minutes   int
	startedAt time.Time
	progress  float64
}

func NewSessionClock(interval time.Duration) *SessionClock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &SessionClock{interval: interval}
}

func (c *SessionClock) Interval() time.Duration { return c.interval }
func (c *SessionClock) Running() bool           { return c.running }
func (c *SessionClock) Epoch() uint64           { return c.epoch }
func (c *SessionClock) Progress() float64       { return c.progress }

func (c *SessionClock) Start(minutes int, now time.Time) (uint64, error) {
	if c.running {
		return 0, apperrors.ErrClockAlreadyRunning
	}
	if err := ValidateDuration(minutes); err != nil {
		return 0, err
	}
	c.epoch++
	c.running = true
	c.minutes = minutes
	c.startedAt = now
	c.progress = 0
	return c.epoch, nil
}

// Stop is idempotent. After it returns, ticks for the closed epoch are stale.
func (c *SessionClock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.epoch++
	c.progress = 0
}

func (c *SessionClock) Tick(epoch uint64, now time.Time) Tick {
	if !c.running || epoch != c.epoch {
		return Tick{Epoch: epoch, Stale: true}
	}
	total := float64(c.minutes * 60)
	elapsed := now.Sub(c.startedAt).Seconds()
	progress := elapsed / total * 100
	if progress < c.progress {
		progress = c.progress
	}
	if progress > 100 {
		progress = 100
	}
	c.progress = progress
	return Tick{Epoch: epoch, Progress: progress, Done: progress >= 100}
}

// Increment is the per-tick progress step at the nominal one-second rate.
func Increment(minutes int) float64 {
	return 100 / float64(minutes*60)
}
