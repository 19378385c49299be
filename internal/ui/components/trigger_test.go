package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type countingToggler struct {
	calls int
	err   error
}

func (c *countingToggler) Toggle() error {
	c.calls++
	return c.err
}

var ctrlF = tea.KeyMsg{Type: tea.KeyCtrlF}

func TestTriggerFiresOnlyWhileAttached(t *testing.T) {
	t.Parallel()
	target := &countingToggler{}
	trig := NewTrigger("ctrl+f", target)

	if handled, _ := trig.Handle(ctrlF); handled || target.calls != 0 {
		t.Fatalf("unattached trigger must not fire")
	}

	trig.Attach()
	handled, err := trig.Handle(ctrlF)
	if !handled || err != nil || target.calls != 1 {
		t.Fatalf("attached trigger should consume ctrl+f, handled=%t err=%v calls=%d", handled, err, target.calls)
	}
	if handled, _ := trig.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}); handled {
		t.Fatalf("plain f must pass through")
	}

	trig.Detach()
	trig.Detach()
	if handled, _ := trig.Handle(ctrlF); handled || target.calls != 1 {
		t.Fatalf("detached trigger must leave no binding behind")
	}
}

func TestTriggerSurfacesToggleError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	trig := NewTrigger("ctrl+f", &countingToggler{err: boom})
	trig.Attach()
	if handled, err := trig.Handle(ctrlF); !handled || !errors.Is(err, boom) {
		t.Fatalf("expected consumed key with error, got handled=%t err=%v", handled, err)
	}
}
