package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	onboardingdto "timeaify/internal/modules/onboarding/dto"
	"timeaify/internal/ui/theme"
)

// OnboardingDoneMsg closes the carousel. Finished is false when the user
// skipped, in which case the carousel shows again next launch.
type OnboardingDoneMsg struct{ Finished bool }

var carouselStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Lavender).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(1, 2)

type Onboarding struct {
	steps   []onboardingdto.StepOutput
	current int
	visible bool
	bar     progress.Model
}

func NewOnboarding() Onboarding {
	return Onboarding{bar: progress.New(progress.WithGradient(theme.ProgressGradient()), progress.WithWidth(40), progress.WithoutPercentage())}
}

func (o *Onboarding) Show(steps []onboardingdto.StepOutput) {
	if len(steps) == 0 {
		return
	}
	o.steps = steps
	o.current = 0
	o.visible = true
}

func (o Onboarding) Visible() bool { return o.visible }
func (o Onboarding) Step() int     { return o.current }

func (o Onboarding) Update(msg tea.Msg) (Onboarding, tea.Cmd) {
	if !o.visible {
		return o, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch keyMsg.String() {
	case "enter", "right", "n":
		if o.current < len(o.steps)-1 {
			o.current++
			return o, nil
		}
		o.visible = false
		return o, func() tea.Msg { return OnboardingDoneMsg{Finished: true} }
	case "left", "p":
		if o.current > 0 {
			o.current--
		}
	case "esc", "s":
		o.visible = false
		return o, func() tea.Msg { return OnboardingDoneMsg{Finished: false} }
	}
	return o, nil
}

func (o Onboarding) View() string {
	if !o.visible {
		return ""
	}
	step := o.steps[o.current]
	next := "next"
	if o.current == len(o.steps)-1 {
		next = "get started"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Welcome to Timeaify") + "\n")
	sb.WriteString(theme.Muted.Render("Let's get you started with the basics") + "\n\n")
	sb.WriteString(o.bar.ViewAs(float64(o.current+1)/float64(len(o.steps))) + "\n\n")
	sb.WriteString(theme.Hot.Render(step.Title) + "\n")
	sb.WriteString(step.Description + "\n\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d/%d  enter:%s  s:skip", o.current+1, len(o.steps), next)))
	return carouselStyle.Render(sb.String())
}
