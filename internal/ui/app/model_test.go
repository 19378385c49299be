package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	blocklistin "timeaify/internal/modules/blocklist/adapter/in"
	blocklistout "timeaify/internal/modules/blocklist/adapter/out"
	blocklistservice "timeaify/internal/modules/blocklist/service"
	blocklistusecase "timeaify/internal/modules/blocklist/usecase"
	focusin "timeaify/internal/modules/focus/adapter/in"
	"timeaify/internal/modules/focus/domain"
	focusservice "timeaify/internal/modules/focus/service"
	focususecase "timeaify/internal/modules/focus/usecase"
	onboardingdto "timeaify/internal/modules/onboarding/dto"
	"timeaify/internal/platform/clock"
	"timeaify/internal/ui/components"
)

type fixedID struct{}

func (fixedID) New() string { return "s-1" }

type fakeOnboarding struct {
	complete  bool
	completed int
}

func (f *fakeOnboarding) Status(context.Context) (onboardingdto.StatusOutput, error) {
	return onboardingdto.StatusOutput{Complete: f.complete, Steps: []onboardingdto.StepOutput{{Title: "one"}}}, nil
}

func (f *fakeOnboarding) Complete(context.Context) error {
	f.completed++
	f.complete = true
	return nil
}

func newTestModel(t *testing.T) (Model, *clock.Manual, *fakeOnboarding) {
	t.Helper()
	clk := clock.NewManual(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	toasts := components.NewToasts()
	blocklistUC := blocklistusecase.NewInteractor(blocklistservice.NewBlockListService(blocklistout.NewMemoryStore(), toasts))
	ctrl := focusservice.NewController(clk, fixedID{}, toasts, nil, domain.NewSessionClock(time.Second))
	focus := focusin.NewTUIHandler(focususecase.NewInteractor(ctrl, blocklistUC, nil))
	trigger := components.NewTrigger("ctrl+f", focus)
	trigger.Attach()
	onboarding := &fakeOnboarding{}
	m := NewModel(focus, blocklistin.NewCLIHandler(blocklistUC), onboarding, trigger, toasts, "ctrl+f")
	return m, clk, onboarding
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTriggerActivatesAndSchedulesTick(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if !m.focusState.Active {
		t.Fatalf("expected active session after trigger")
	}
	if cmd == nil {
		t.Fatalf("expected tick and toast commands")
	}
	if !m.hasToast || m.toast.Title != "Focus Mode Activated" {
		t.Fatalf("expected activation toast, got %+v", m.toast)
	}
	if !strings.Contains(m.View(), "0% Complete - Stay focused!") {
		t.Fatalf("expected progress banner in view")
	}
}

func TestTriggerKeyIsNotForwardedToInputs(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if !m.focusView.Editing() {
		t.Fatalf("expected block input to have focus")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if !m.focusState.Active || !m.focusView.Editing() {
		t.Fatalf("trigger must toggle without disturbing the input")
	}
}

func TestStaleTickIsNotRescheduled(t *testing.T) {
	m, clk, _ := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	epoch := m.focusState.Epoch
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})

	next, _ := m.update(focusTickMsg{epoch: epoch, at: clk.Advance(time.Second)})
	if next.focusState.Active {
		t.Fatalf("stale tick must not reactivate")
	}
	if _, cmd := next.update(focusTickMsg{epoch: epoch, at: clk.Advance(time.Second)}); cmd != nil {
		t.Fatalf("stale tick must not schedule another")
	}
}

func TestTickCompletesSession(t *testing.T) {
	m, clk, _ := newTestModel(t)
	m, _ = send(t, m, focusDurationMsg("1"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	epoch := m.focusState.Epoch

	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		m, cmd = m.update(focusTickMsg{epoch: epoch, at: clk.Advance(time.Second)})
	}
	if m.focusState.Active || cmd != nil {
		t.Fatalf("completed session must stop ticking")
	}
	if len(m.focus.History()) != 1 || !m.focus.History()[0].Completed {
		t.Fatalf("expected one completed session in history")
	}
}

func TestPaletteCommands(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, components.PaletteSubmitMsg{Input: "block:add example.com"})
	m, _ = send(t, m, components.PaletteSubmitMsg{Input: "attempt example.com"})
	if !strings.Contains(m.status, "no session is running") {
		t.Fatalf("unexpected status %q", m.status)
	}
	m, _ = send(t, m, components.PaletteSubmitMsg{Input: "focus:toggle"})
	m, _ = send(t, m, components.PaletteSubmitMsg{Input: "attempt example.com"})
	if m.status != "blocked: example.com" {
		t.Fatalf("unexpected status %q", m.status)
	}
	m, _ = send(t, m, components.PaletteSubmitMsg{Input: "focus:duration 25.5"})
	if m.focusState.DurationMinutes != 25 {
		t.Fatalf("fractional duration must be rejected")
	}
	m, _ = send(t, m, components.PaletteSubmitMsg{Input: "nope"})
	if m.status != "unknown command: nope" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestOnboardingFinishPersistsFlag(t *testing.T) {
	m, _, onboarding := newTestModel(t)
	m, _ = send(t, m, components.OnboardingDoneMsg{Finished: false})
	if onboarding.completed != 0 {
		t.Fatalf("skip must not persist the flag")
	}
	m, _ = send(t, m, components.OnboardingDoneMsg{Finished: true})
	if onboarding.completed != 1 {
		t.Fatalf("finish must persist the flag")
	}
	if m.toast.Title != "Welcome to Timeaify!" {
		t.Fatalf("expected welcome toast, got %+v", m.toast)
	}
}

func focusDurationMsg(raw string) tea.Msg {
	return components.PaletteSubmitMsg{Input: "focus:duration " + raw}
}
