package in

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	focusdto "timeaify/internal/modules/focus/dto"
	focusin "timeaify/internal/modules/focus/port/in"
)

// TickSource starts a periodic tick stream and returns a stop function.
type TickSource func(interval time.Duration) (<-chan time.Time, func())

func TimeTicker(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// Runner hosts a single focus session in the foreground without the TUI.
// All controller calls happen on the Run goroutine.
type Runner struct {
	usecase focusin.Usecase
	out     io.Writer
	ticks   TickSource
}

func NewRunner(usecase focusin.Usecase, out io.Writer, ticks TickSource) Runner {
	if ticks == nil {
		ticks = TimeTicker
	}
	if out == nil {
		out = io.Discard
	}
	return Runner{usecase: usecase, out: out, ticks: ticks}
}

// Run activates a session and blocks until it completes or ctx is cancelled,
// in which case the session is deactivated and recorded as stopped early.
func (r Runner) Run(ctx context.Context, minutes int) (focusdto.SessionOutput, error) {
	if _, err := r.usecase.Activate(minutes); err != nil {
		return focusdto.SessionOutput{}, err
	}
	status := r.usecase.Status()
	ticks, stop := r.ticks(status.TickInterval)
	defer stop()

	r.render(0)
	for {
		select {
		case <-ctx.Done():
			session, _ := r.usecase.Deactivate()
			_, _ = fmt.Fprintln(r.out)
			return session, nil
		case at, ok := <-ticks:
			if !ok {
				session, _ := r.usecase.Deactivate()
				_, _ = fmt.Fprintln(r.out)
				return session, nil
			}
			out := r.usecase.Tick(focusdto.TickInput{Epoch: status.Epoch, At: at})
			if out.Completed {
				r.render(100)
				_, _ = fmt.Fprintln(r.out)
				return out.Session, nil
			}
			if !out.Reschedule {
				return focusdto.SessionOutput{}, fmt.Errorf("session clock stopped unexpectedly")
			}
			r.render(out.Progress)
		}
	}
}

func (r Runner) render(progress float64) {
	const width = 30
	filled := int(progress / 100 * width)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	_, _ = fmt.Fprintf(r.out, "\r%s %3d%% Complete - Stay focused!", bar, int(math.Floor(progress)))
}
