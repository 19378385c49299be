// Package notify carries user-facing notifications out of the core. The core
// never waits on a notifier and never inspects a response.
package notify

import "go.uber.org/zap"

type Kind string

const (
	KindActivated    Kind = "activated"
	KindDeactivated  Kind = "deactivated"
	KindCompleted    Kind = "completed"
	KindItemBlocked  Kind = "itemBlocked"
	KindInvalidInput Kind = "invalidInput"
	KindWelcome      Kind = "welcome"
)

type Notifier interface {
	Notify(kind Kind, title, message string)
}

// Func adapts a plain function to Notifier.
type Func func(kind Kind, title, message string)

func (f Func) Notify(kind Kind, title, message string) { f(kind, title, message) }

type Nop struct{}

func (Nop) Notify(Kind, string, string) {}

// Fanout delivers each notification to every notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(kind Kind, title, message string) {
	for _, n := range f {
		if n != nil {
			n.Notify(kind, title, message)
		}
	}
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return LogNotifier{logger: logger}
}

func (n LogNotifier) Notify(kind Kind, title, message string) {
	fields := []zap.Field{zap.String("kind", string(kind)), zap.String("title", title), zap.String("message", message)}
	if kind == KindInvalidInput {
		n.logger.Warn("notification", fields...)
		return
	}
	n.logger.Info("notification", fields...)
}
