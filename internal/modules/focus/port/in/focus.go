package in

import (
	"context"

	"timeaify/internal/modules/focus/dto"
)

// Usecase drives the focus controller. Apart from ExportHistory and
// RecordAttempt nothing here blocks; hosts call it from their event loop.
type Usecase interface {
	Activate(minutes int) (dto.SessionOutput, error)
	Deactivate() (dto.SessionOutput, bool)
	Toggle() error
	SetDuration(minutes int) error
	SetDurationText(raw string) error
	Tick(input dto.TickInput) dto.TickOutput
	RecordAttempt(ctx context.Context, identifier string) (dto.AttemptOutput, error)
	Status() dto.StatusOutput
	History() []dto.SessionOutput
	ExportHistory(ctx context.Context) (dto.ExportOutput, error)
}
