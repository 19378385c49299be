package history

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	focusdto "timeaify/internal/modules/focus/dto"
	"timeaify/internal/ui/theme"
)

type Model struct {
	sessions []focusdto.SessionOutput
	vp       viewport.Model
	width    int
	height   int
}

func New() Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)
	return Model{vp: vp}
}

func (m *Model) SetSessions(sessions []focusdto.SessionOutput) {
	m.sessions = sessions
	m.vp.SetContent(Render(sessions))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.vp.Width = size.Width
		m.vp.Height = max(size.Height-2, 1)
		m.vp.SetContent(Render(m.sessions))
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return theme.Title.Render("Focus Sessions") + "\n" + m.vp.View()
}

// Render lists sessions newest first, numbered so the oldest is Session 1.
func Render(sessions []focusdto.SessionOutput) string {
	if len(sessions) == 0 {
		return theme.Muted.Render("No focus sessions yet.")
	}
	var sb strings.Builder
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		label := fmt.Sprintf("Session %d", i+1)
		if s.Completed {
			label += theme.Good.Render("  ✓")
		}
		sb.WriteString(theme.Hot.Render(label) + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("Duration: %d minutes", int(math.Round(s.DurationMin)))) + "\n")
		sb.WriteString(theme.Muted.Render("Start: "+s.StartedAt.Local().Format("15:04:05")) + "\n")
		if !s.EndedAt.IsZero() {
			sb.WriteString(theme.Muted.Render("End: "+s.EndedAt.Local().Format("15:04:05")) + "\n")
		}
		if n := len(s.BlockedAttempts); n > 0 {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("Blocked attempts: %d", n)) + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
