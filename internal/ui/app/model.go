package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	blocklistdto "timeaify/internal/modules/blocklist/dto"
	focusdto "timeaify/internal/modules/focus/dto"
	onboardingdto "timeaify/internal/modules/onboarding/dto"
	"timeaify/internal/platform/notify"
	"timeaify/internal/ui/components"
	"timeaify/internal/ui/theme"
	focusview "timeaify/internal/ui/views/focus"
	historyview "timeaify/internal/ui/views/history"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.

type focusPort interface {
	Toggle() error
	SetDurationText(raw string) error
	Tick(epoch uint64, at time.Time) focusdto.TickOutput
	Status() focusdto.StatusOutput
	History() []focusdto.SessionOutput
	RecordAttempt(ctx context.Context, identifier string) (focusdto.AttemptOutput, error)
	ExportHistory(ctx context.Context) (focusdto.ExportOutput, error)
}

type blocklistPort interface {
	Add(ctx context.Context, raw string) (blocklistdto.IdentifierOutput, error)
	List(ctx context.Context) (blocklistdto.ListOutput, error)
}

type onboardingPort interface {
	Status(ctx context.Context) (onboardingdto.StatusOutput, error)
	Complete(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabFocus tabID = iota
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Focus", "History"}

const toastTTL = 4 * time.Second

// ─── async messages ───────────────────────────────────────────────────────────

// focusTickMsg carries the epoch it was scheduled for so ticks that outlive
// their session are dropped by the controller.
type focusTickMsg struct {
	epoch uint64
	at    time.Time
}

type clearToastMsg struct{ seq int }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle  key.Binding
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys(toggle key.Binding) keyMap {
	return keyMap{
		Toggle:  toggle,
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the focus trigger,
// toasts, onboarding, and the command palette. Every controller call happens
// inside Update so the focus session is only touched from one goroutine.
type Model struct {
	focus      focusPort
	blocklist  blocklistPort
	onboarding onboardingPort
	trigger    *components.Trigger
	toasts     *components.Toasts

	focusView   focusview.Model
	historyView historyview.Model

	activeTab  tabID
	keys       keyMap
	help       help.Model
	showHelp   bool
	palette    components.Palette
	carousel   components.Onboarding
	toggleKey  string
	toast      components.Toast
	hasToast   bool
	toastSeq   int
	status     string
	focusState focusdto.StatusOutput
	width      int
	height     int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	focus focusPort,
	blocklist blocklistPort,
	onboarding onboardingPort,
	trigger *components.Trigger,
	toasts *components.Toasts,
	toggleKey string,
) Model {
	if toasts == nil {
		toasts = components.NewToasts()
	}
	if trigger == nil {
		trigger = components.NewTrigger(toggleKey, focus)
	}
	m := Model{
		focus:       focus,
		blocklist:   blocklist,
		onboarding:  onboarding,
		trigger:     trigger,
		toasts:      toasts,
		focusView:   focusview.New(toggleKey),
		historyView: historyview.New(),
		activeTab:   tabFocus,
		keys:        defaultKeys(trigger.Binding()),
		help:        help.New(),
		palette:     components.NewPalette(),
		carousel:    components.NewOnboarding(),
		toggleKey:   toggleKey,
		status:      "ready",
	}
	m.refresh()
	m.refreshLists()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.showOnboardingCmd(false)
}

// ─── update ───────────────────────────────────────────────────────────────────

// Update delegates to update and then surfaces any notifications raised
// while handling msg.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	toastCmd := next.drainToasts()
	return next, tea.Batch(cmd, toastCmd)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	// The trigger sees keys before anything else so a text input never
	// receives the toggle combination.
	if consumed, err := m.trigger.Handle(msg); consumed {
		return m.afterToggle(err)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case focusTickMsg:
		out := m.focus.Tick(msg.epoch, msg.at)
		m.refresh()
		if out.Completed {
			m.historyView.SetSessions(m.focus.History())
		}
		if out.Reschedule {
			return m, m.scheduleTick(msg.epoch)
		}
		return m, nil

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.hasToast = false
		}
		return m, nil

	case onboardingShowMsg:
		m.carousel.Show(msg.steps)
		return m, nil

	case components.OnboardingDoneMsg:
		if !msg.Finished {
			m.status = "onboarding skipped"
			return m, nil
		}
		if m.onboarding != nil {
			if err := m.onboarding.Complete(context.Background()); err != nil {
				m.status = "onboarding: " + err.Error()
				return m, nil
			}
		}
		m.toasts.Notify(notify.KindWelcome, "Welcome to Timeaify!", fmt.Sprintf("Press %s anytime to start a focus session.", m.toggleKey))
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case focusview.ToggleRequestedMsg:
		return m.afterToggle(m.focus.Toggle())

	case focusview.DurationSubmittedMsg:
		if err := m.focus.SetDurationText(msg.Raw); err != nil {
			m.status = err.Error()
		}
		m.refresh()
		return m, nil

	case focusview.BlockSubmittedMsg:
		m.addBlockItem(msg.Raw)
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.trigger.Detach()
		return m, tea.Quit
	}
	if m.carousel.Visible() {
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd
	}
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.focusView.Editing() {
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "q":
			m.trigger.Detach()
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}
	var cmd tea.Cmd
	switch m.activeTab {
	case tabFocus:
		m.focusView, cmd = m.focusView.Update(msg)
	case tabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	}
	return m, cmd
}

// afterToggle refreshes state after a toggle and starts ticking when the
// toggle activated a new session.
func (m Model) afterToggle(err error) (Model, tea.Cmd) {
	if err != nil {
		m.status = err.Error()
	}
	m.refresh()
	m.historyView.SetSessions(m.focus.History())
	if m.focusState.Active {
		return m, m.scheduleTick(m.focusState.Epoch)
	}
	return m, nil
}

func (m Model) scheduleTick(epoch uint64) tea.Cmd {
	interval := m.focusState.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return focusTickMsg{epoch: epoch, at: at}
	})
}

func (m *Model) drainToasts() tea.Cmd {
	pending := m.toasts.Drain()
	if len(pending) == 0 {
		return nil
	}
	m.toast = pending[len(pending)-1]
	m.hasToast = true
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.carousel.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.carousel.View())
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabFocus:
		return m.focusView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	bar := "timeaify  " + strings.Join(parts, theme.Muted.Render(" │ "))
	if m.focusState.Active {
		bar += "  " + theme.Banner.Render(fmt.Sprintf("%d%% Complete - Stay focused!", int(m.focusState.Progress)))
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasToast {
		left = m.toast.Render()
	}
	right := theme.Muted.Render(m.toggleKey + ":focus  ?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "focus:toggle":
		return m.afterToggle(m.focus.Toggle())

	case "focus:duration":
		if rest == "" {
			m.status = "usage: focus:duration <minutes>"
			return m, nil
		}
		if err := m.focus.SetDurationText(rest); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("duration set to %s minutes", rest)
		}
		m.refresh()

	case "block:add":
		if rest == "" {
			m.status = "usage: block:add <app or website>"
			return m, nil
		}
		m.addBlockItem(rest)

	case "attempt":
		if rest == "" {
			m.status = "usage: attempt <app or website>"
			return m, nil
		}
		out, err := m.focus.RecordAttempt(context.Background(), rest)
		switch {
		case err != nil:
			m.status = "attempt: " + err.Error()
		case out.Recorded:
			m.status = "blocked: " + out.Identifier
		case out.Blocked:
			m.status = out.Identifier + " is blocked but no session is running"
		default:
			m.status = out.Identifier + " is not on the block list"
		}
		m.refresh()

	case "history:export":
		out, err := m.focus.ExportHistory(context.Background())
		if err != nil {
			m.status = "export: " + err.Error()
		} else {
			m.status = fmt.Sprintf("exported %d session(s) to %s", out.Sessions, out.Path)
		}

	case "onboarding:show":
		return m, m.showOnboardingCmd(true)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) refresh() {
	m.focusState = m.focus.Status()
	m.focusView.SetStatus(m.focusState)
}

func (m *Model) refreshLists() {
	if m.blocklist == nil {
		return
	}
	lists, err := m.blocklist.List(context.Background())
	if err != nil {
		m.status = "block list: " + err.Error()
		return
	}
	m.focusView.SetLists(lists)
}

func (m *Model) addBlockItem(raw string) {
	if m.blocklist == nil {
		return
	}
	if _, err := m.blocklist.Add(context.Background(), raw); err != nil {
		m.status = err.Error()
		return
	}
	m.refreshLists()
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.focusView, _ = m.focusView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

type onboardingShowMsg struct{ steps []onboardingdto.StepOutput }

// showOnboardingCmd loads the carousel steps. Unless force is set the
// carousel only appears while the completion flag is unset.
func (m Model) showOnboardingCmd(force bool) tea.Cmd {
	if m.onboarding == nil {
		return nil
	}
	port := m.onboarding
	return func() tea.Msg {
		status, err := port.Status(context.Background())
		if err != nil || (status.Complete && !force) {
			return nil
		}
		return onboardingShowMsg{steps: status.Steps}
	}
}
