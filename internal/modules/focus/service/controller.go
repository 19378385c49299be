package service

import (
	"fmt"
	"math"
	"time"

	"timeaify/internal/modules/focus/domain"
	focusout "timeaify/internal/modules/focus/port/out"
	"timeaify/internal/platform/clock"
	apperrors "timeaify/internal/platform/errors"
	"timeaify/internal/platform/id"
	"timeaify/internal/platform/notify"
)

// Controller owns the focus session lifecycle. It is not safe for concurrent
// use: the host must deliver calls and ticks from a single goroutine.
type Controller struct {
	clock    clock.Clock
	idGen    id.Generator
	notifier notify.Notifier
	observer focusout.SessionObserver
	timer    *domain.SessionClock

	state    domain.State
	current  *domain.Session
	history  []domain.Session
	progress float64
	duration int
}

func NewController(clk clock.Clock, idGen id.Generator, notifier notify.Notifier, observer focusout.SessionObserver, timer *domain.SessionClock) *Controller {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if timer == nil {
		timer = domain.NewSessionClock(domain.DefaultTickInterval)
	}
	return &Controller{
		clock:    clk,
		idGen:    idGen,
		notifier: notifier,
		observer: observer,
		timer:    timer,
		duration: 25,
	}
}

func (c *Controller) State() domain.State         { return c.state }
func (c *Controller) Progress() float64           { return c.progress }
func (c *Controller) Duration() int               { return c.duration }
func (c *Controller) Epoch() uint64               { return c.timer.Epoch() }
func (c *Controller) TickInterval() time.Duration { return c.timer.Interval() }

// Current returns a copy of the in-progress session.
func (c *Controller) Current() (domain.Session, bool) {
	if c.current == nil {
		return domain.Session{}, false
	}
	return c.current.Clone(), true
}

// History returns finalized sessions, oldest first.
func (c *Controller) History() []domain.Session {
	out := make([]domain.Session, len(c.history))
	for i, s := range c.history {
		out[i] = s.Clone()
	}
	return out
}

// SetDuration configures the duration Toggle activates with.
func (c *Controller) SetDuration(minutes int) error {
	if err := domain.ValidateDuration(minutes); err != nil {
		c.rejectDuration()
		return err
	}
	c.duration = minutes
	return nil
}

// SetDurationText parses raw as whole minutes before applying it.
func (c *Controller) SetDurationText(raw string) error {
	minutes, err := domain.ParseDuration(raw)
	if err != nil {
		c.rejectDuration()
		return err
	}
	c.duration = minutes
	return nil
}

func (c *Controller) Activate(minutes int) (domain.Session, error) {
	if c.state == domain.StateActive {
		return domain.Session{}, apperrors.ErrActiveSessionExists
	}
	if err := domain.ValidateDuration(minutes); err != nil {
		c.rejectDuration()
		return domain.Session{}, err
	}

	now := c.clock.Now()
	if _, err := c.timer.Start(minutes, now); err != nil {
		return domain.Session{}, fmt.Errorf("start session clock: %w", err)
	}
	session := domain.NewSession(c.idGen.New(), minutes, now)
	c.current = &session
	c.progress = 0
	c.state = domain.StateActive
	c.observeProgress()
	c.notifier.Notify(notify.KindActivated, "Focus Mode Activated", fmt.Sprintf("Starting %d minute focus session", minutes))
	return session.Clone(), nil
}

// Deactivate ends the active session early. It is a no-op while idle.
func (c *Controller) Deactivate() (domain.Session, bool) {
	if c.state != domain.StateActive {
		return domain.Session{}, false
	}
	session := c.finalize(c.clock.Now(), false)
	c.notifier.Notify(notify.KindDeactivated, "Focus Mode Deactivated", "Great work on staying focused!")
	return session, true
}

func (c *Controller) Toggle() error {
	if c.state == domain.StateActive {
		c.Deactivate()
		return nil
	}
	_, err := c.Activate(c.duration)
	return err
}

// OnTick applies one clock tick. The tick that reaches 100% finalizes the
// session; any later tick for the same run is stale.
func (c *Controller) OnTick(epoch uint64, now time.Time) (domain.Tick, domain.Session) {
	tick := c.timer.Tick(epoch, now)
	if tick.Stale || c.state != domain.StateActive {
		tick.Stale = true
		return tick, domain.Session{}
	}
	c.progress = tick.Progress
	c.observeProgress()
	if !tick.Done {
		return tick, domain.Session{}
	}

	session := c.finalize(now, true)
	minutes := int(math.Round(session.DurationMin))
	c.notifier.Notify(notify.KindCompleted, "Focus Session Complete", fmt.Sprintf("You stayed focused for %d minutes", minutes))
	return tick, session
}

// RecordBlockedAttempt appends an attempt to the active session. It reports
// false while idle.
func (c *Controller) RecordBlockedAttempt(identifier string) bool {
	if c.state != domain.StateActive || c.current == nil {
		return false
	}
	c.current.BlockedAttempts = append(c.current.BlockedAttempts, domain.BlockedAttempt{
		Identifier: identifier,
		At:         c.clock.Now(),
	})
	return true
}

func (c *Controller) finalize(now time.Time, completed bool) domain.Session {
	c.timer.Stop()
	session := c.current.Finalize(now, completed)
	c.history = append(c.history, session)
	c.current = nil
	c.progress = 0
	c.state = domain.StateIdle
	if c.observer != nil {
		c.observer.ObserveSession(session.DurationMin, completed)
	}
	c.observeProgress()
	return session.Clone()
}

func (c *Controller) rejectDuration() {
	c.notifier.Notify(notify.KindInvalidInput, "Invalid Duration",
		fmt.Sprintf("Focus duration must be a whole number between %d and %d minutes", domain.MinDurationMinutes, domain.MaxDurationMinutes))
}

func (c *Controller) observeProgress() {
	if c.observer != nil {
		c.observer.SetProgress(c.progress)
	}
}
