package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles groups the lipgloss styles used by the table view
type Styles struct {
	Title       lipgloss.Style
	PaneBorder  lipgloss.Style
	FocusedPane lipgloss.Style
	Label       lipgloss.Style
	Total       lipgloss.Style
	RedCard     lipgloss.Style
	BlackCard   lipgloss.Style
	CardBack    lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
	Info        lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds the style set for a theme. "auto" picks dark or light
// based on the terminal background.
func NewStyles(theme string) Styles {
	dark := true
	switch theme {
	case "light":
		dark = false
	case "dark":
		dark = true
	default:
		dark = termenv.HasDarkBackground()
	}

	blackCard := lipgloss.Color("#000000")
	text := lipgloss.Color("#1A1A1A")
	if dark {
		blackCard = lipgloss.Color("#FAFAFA")
		text = lipgloss.Color("#FAFAFA")
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),

		PaneBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Total: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),

		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		BlackCard: lipgloss.NewStyle().
			Foreground(blackCard).
			Bold(true),

		CardBack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
