package components

import (
	"sync"

	"timeaify/internal/platform/notify"
	"timeaify/internal/ui/theme"
)

type Toast struct {
	Kind    notify.Kind
	Title   string
	Message string
}

func (t Toast) Render() string {
	title := theme.Good.Render(t.Title)
	if t.Kind == notify.KindInvalidInput {
		title = theme.Bad.Render(t.Title)
	}
	if t.Message == "" {
		return theme.Toast.Render(title)
	}
	return theme.Toast.Render(title + "  " + t.Message)
}

// Toasts queues notifications raised while handling a message so the root
// model can drain and display them afterwards.
type Toasts struct {
	mu      sync.Mutex
	pending []Toast
}

func NewToasts() *Toasts {
	return &Toasts{}
}

func (q *Toasts) Notify(kind notify.Kind, title, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, Toast{Kind: kind, Title: title, Message: message})
}

func (q *Toasts) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
