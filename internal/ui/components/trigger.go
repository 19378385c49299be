package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Toggler interface {
	Toggle() error
}

// Trigger binds a key combination to Toggle for as long as it is attached.
// A matching key is consumed: callers must not forward it to child views,
// which keeps inputs from also acting on it (ctrl+f would otherwise move a
// text cursor).
type Trigger struct {
	binding  key.Binding
	target   Toggler
	attached bool
}

func NewTrigger(keys string, target Toggler) *Trigger {
	return &Trigger{
		binding: key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, "toggle focus")),
		target:  target,
	}
}

func (t *Trigger) Attach() {
	t.attached = true
	t.binding.SetEnabled(true)
}

// Detach releases the binding. It is safe to call more than once.
func (t *Trigger) Detach() {
	t.attached = false
	t.binding.SetEnabled(false)
}

func (t *Trigger) Attached() bool { return t != nil && t.attached }

func (t *Trigger) Binding() key.Binding { return t.binding }

// Handle reports whether msg was consumed, along with any Toggle error.
func (t *Trigger) Handle(msg tea.Msg) (bool, error) {
	if !t.Attached() || t.target == nil {
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, t.binding) {
		return false, nil
	}
	return true, t.target.Toggle()
}
