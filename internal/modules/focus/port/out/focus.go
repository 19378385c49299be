package out

import (
	"context"

	"timeaify/internal/modules/focus/domain"
)

// SessionObserver receives lifecycle measurements; metrics.Recorder is the
// production implementation.
type SessionObserver interface {
	ObserveSession(minutes float64, completed bool)
	SetProgress(percent float64)
}

type HistoryExporter interface {
	Export(ctx context.Context, sessions []domain.Session) (string, error)
}
