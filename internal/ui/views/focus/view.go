package focus

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	blocklistdto "timeaify/internal/modules/blocklist/dto"
	focusdto "timeaify/internal/modules/focus/dto"
	"timeaify/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

type DurationSubmittedMsg struct{ Raw string }

type BlockSubmittedMsg struct{ Raw string }

type ToggleRequestedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type field int

const (
	fieldNone field = iota
	fieldDuration
	fieldBlock
)

type Model struct {
	status    focusdto.StatusOutput
	lists     blocklistdto.ListOutput
	bar       progress.Model
	duration  textinput.Model
	block     textinput.Model
	editing   field
	toggleKey string
	width     int
	height    int
}

func New(toggleKey string) Model {
	d := textinput.New()
	d.Placeholder = "25"
	d.CharLimit = 3
	d.Width = 5

	b := textinput.New()
	b.Placeholder = "Enter app name or website URL"
	b.CharLimit = 256

	return Model{
		bar:       progress.New(progress.WithGradient(theme.ProgressGradient()), progress.WithoutPercentage()),
		duration:  d,
		block:     b,
		toggleKey: toggleKey,
	}
}

func (m *Model) SetStatus(status focusdto.StatusOutput) {
	m.status = status
	if !m.duration.Focused() {
		m.duration.SetValue(fmt.Sprintf("%d", status.DurationMinutes))
	}
}

func (m *Model) SetLists(lists blocklistdto.ListOutput) { m.lists = lists }

// Editing reports whether a text field has focus; global keys must yield.
func (m Model) Editing() bool { return m.editing != fieldNone }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(m.width-8, 60))
		m.block.Width = max(10, min(m.width-12, 48))
		return m, nil

	case tea.KeyMsg:
		if m.editing != fieldNone {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case " ":
			return m, func() tea.Msg { return ToggleRequestedMsg{} }
		case "d":
			m.editing = fieldDuration
			m.duration.SetValue("")
			return m, m.duration.Focus()
		case "b":
			m.editing = fieldBlock
			m.block.SetValue("")
			return m, m.block.Focus()
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blur()
		m.duration.SetValue(fmt.Sprintf("%d", m.status.DurationMinutes))
		return m, nil
	case "enter":
		var out tea.Msg
		if m.editing == fieldDuration {
			out = DurationSubmittedMsg{Raw: m.duration.Value()}
		} else {
			out = BlockSubmittedMsg{Raw: m.block.Value()}
			m.block.SetValue("")
		}
		m.blur()
		return m, func() tea.Msg { return out }
	}
	var cmd tea.Cmd
	if m.editing == fieldDuration {
		m.duration, cmd = m.duration.Update(msg)
	} else {
		m.block, cmd = m.block.Update(msg)
	}
	return m, cmd
}

func (m *Model) blur() {
	m.editing = fieldNone
	m.duration.Blur()
	m.block.Blur()
}

func (m Model) View() string {
	var sb strings.Builder

	state := theme.Muted.Render("○ idle")
	if m.status.Active {
		state = theme.Good.Render("● focusing")
	}
	sb.WriteString(theme.Title.Render("Focus Mode") + "  " + state + "  " + theme.Muted.Render("["+m.toggleKey+"]") + "\n\n")

	sb.WriteString("Duration: " + m.duration.View() + " min\n")
	if m.status.Active {
		sb.WriteString("\n" + m.bar.ViewAs(m.status.Progress/100) + "\n")
		sb.WriteString(fmt.Sprintf("%d%% Complete - Stay focused!\n", int(math.Floor(m.status.Progress))))
		if n := len(m.status.Current.BlockedAttempts); n > 0 {
			sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d blocked attempt(s) this session", n)) + "\n")
		}
	}

	sb.WriteString("\n" + theme.Title.Render("Block List") + "\n")
	sb.WriteString(m.block.View() + "\n\n")
	sb.WriteString(renderList("Apps", m.lists.Apps) + "\n")
	sb.WriteString(renderList("Websites", m.lists.Websites))

	sb.WriteString("\n\n" + theme.Muted.Render("space:toggle  d:duration  b:block item  esc:cancel"))

	style := theme.Pane
	if m.status.Active {
		style = theme.PaneActive
	}
	return style.Width(max(m.width-4, 20)).Render(sb.String())
}

func renderList(label string, items []string) string {
	if len(items) == 0 {
		return theme.Muted.Render(label + ": none")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, theme.Muted.Render(label+": "), strings.Join(items, ", "))
}
