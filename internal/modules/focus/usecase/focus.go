package usecase

import (
	"context"
	"fmt"

	blocklistin "timeaify/internal/modules/blocklist/port/in"
	"timeaify/internal/modules/focus/domain"
	focusdto "timeaify/internal/modules/focus/dto"
	focusin "timeaify/internal/modules/focus/port/in"
	focusout "timeaify/internal/modules/focus/port/out"
	"timeaify/internal/modules/focus/service"
)

type Interactor struct {
	ctrl      *service.Controller
	blocklist blocklistin.Usecase
	exporter  focusout.HistoryExporter
}

func NewInteractor(ctrl *service.Controller, blocklist blocklistin.Usecase, exporter focusout.HistoryExporter) focusin.Usecase {
	return &Interactor{ctrl: ctrl, blocklist: blocklist, exporter: exporter}
}

func (i *Interactor) Activate(minutes int) (focusdto.SessionOutput, error) {
	session, err := i.ctrl.Activate(minutes)
	if err != nil {
		return focusdto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Deactivate() (focusdto.SessionOutput, bool) {
	session, ok := i.ctrl.Deactivate()
	if !ok {
		return focusdto.SessionOutput{}, false
	}
	return toSessionOutput(session), true
}

func (i *Interactor) Toggle() error {
	return i.ctrl.Toggle()
}

func (i *Interactor) SetDuration(minutes int) error {
	return i.ctrl.SetDuration(minutes)
}

func (i *Interactor) SetDurationText(raw string) error {
	return i.ctrl.SetDurationText(raw)
}

func (i *Interactor) Tick(input focusdto.TickInput) focusdto.TickOutput {
	tick, finished := i.ctrl.OnTick(input.Epoch, input.At)
	out := focusdto.TickOutput{
		Progress:   tick.Progress,
		Reschedule: !tick.Stale && !tick.Done,
		Completed:  tick.Done && !tick.Stale,
	}
	if out.Completed {
		out.Session = toSessionOutput(finished)
	}
	return out
}

// RecordAttempt records identifier against the active session when it is on
// the block list.
func (i *Interactor) RecordAttempt(ctx context.Context, identifier string) (focusdto.AttemptOutput, error) {
	out := focusdto.AttemptOutput{Identifier: identifier}
	if i.blocklist == nil {
		return out, fmt.Errorf("block list usecase is not configured")
	}
	blocked, err := i.blocklist.IsBlocked(ctx, identifier)
	if err != nil {
		return out, err
	}
	out.Blocked = blocked
	if blocked {
		out.Recorded = i.ctrl.RecordBlockedAttempt(identifier)
	}
	return out, nil
}

func (i *Interactor) Status() focusdto.StatusOutput {
	out := focusdto.StatusOutput{
		Active:          i.ctrl.State() == domain.StateActive,
		Progress:        i.ctrl.Progress(),
		DurationMinutes: i.ctrl.Duration(),
		Epoch:           i.ctrl.Epoch(),
		TickInterval:    i.ctrl.TickInterval(),
	}
	if current, ok := i.ctrl.Current(); ok {
		out.Current = toSessionOutput(current)
	}
	return out
}

func (i *Interactor) History() []focusdto.SessionOutput {
	history := i.ctrl.History()
	out := make([]focusdto.SessionOutput, 0, len(history))
	for _, s := range history {
		out = append(out, toSessionOutput(s))
	}
	return out
}

func (i *Interactor) ExportHistory(ctx context.Context) (focusdto.ExportOutput, error) {
	if i.exporter == nil {
		return focusdto.ExportOutput{}, fmt.Errorf("history exporter is not configured")
	}
	history := i.ctrl.History()
	path, err := i.exporter.Export(ctx, history)
	if err != nil {
		return focusdto.ExportOutput{}, err
	}
	return focusdto.ExportOutput{Path: path, Sessions: len(history)}, nil
}

func toSessionOutput(s domain.Session) focusdto.SessionOutput {
	out := focusdto.SessionOutput{
		ID:             s.ID,
		PlannedMinutes: s.PlannedMinutes,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		DurationMin:    s.DurationMin,
		Completed:      s.Completed,
	}
	for _, a := range s.BlockedAttempts {
		out.BlockedAttempts = append(out.BlockedAttempts, focusdto.BlockedAttemptOutput{Identifier: a.Identifier, At: a.At})
	}
	return out
}
