package domain

// FlagComplete is the persisted flag gating the introductory carousel.
const FlagComplete = "onboarding_complete"

type Step struct {
	Title       string
	Description string
}

// Steps returns the carousel shown on first launch. toggleKey is the
// configured focus shortcut, e.g. "ctrl+f".
func Steps(toggleKey string) []Step {
	return []Step{
		{Title: "Track Your Time", Description: "Timeaify tracks your focus sessions and shows you how you spend your time."},
		{Title: "Focus Mode", Description: "Use " + toggleKey + " to toggle focus mode and block distracting apps and websites."},
		{Title: "Listen to Music", Description: "Connect your music player to keep your soundtrack going while you focus."},
		{Title: "Analytics", Description: "View insights about your focus sessions and blocked attempts."},
	}
}
