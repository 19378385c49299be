package in

import (
	"context"
	"time"

	focusdto "timeaify/internal/modules/focus/dto"
	focusin "timeaify/internal/modules/focus/port/in"
)

type TUIHandler struct {
	usecase focusin.Usecase
}

func NewTUIHandler(usecase focusin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Toggle() error {
	return h.usecase.Toggle()
}

func (h TUIHandler) SetDuration(minutes int) error {
	return h.usecase.SetDuration(minutes)
}

func (h TUIHandler) SetDurationText(raw string) error {
	return h.usecase.SetDurationText(raw)
}

func (h TUIHandler) Tick(epoch uint64, at time.Time) focusdto.TickOutput {
	return h.usecase.Tick(focusdto.TickInput{Epoch: epoch, At: at})
}

func (h TUIHandler) Status() focusdto.StatusOutput {
	return h.usecase.Status()
}

func (h TUIHandler) History() []focusdto.SessionOutput {
	return h.usecase.History()
}

func (h TUIHandler) RecordAttempt(ctx context.Context, identifier string) (focusdto.AttemptOutput, error) {
	return h.usecase.RecordAttempt(ctx, identifier)
}

func (h TUIHandler) ExportHistory(ctx context.Context) (focusdto.ExportOutput, error) {
	return h.usecase.ExportHistory(ctx)
}
