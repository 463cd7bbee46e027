package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorGreen     = lipgloss.Color("#4FA66D")
	ColorGreenDark = lipgloss.Color("#3B8556")
	ColorInk       = lipgloss.Color("#2E2E2E")
	ColorGray      = lipgloss.Color("#8A8A8A")
	ColorLight     = lipgloss.Color("#F1F5F2")
	ColorWhite     = lipgloss.Color("#FFFFFF")
	ColorRed       = lipgloss.Color("#E5484D")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorInk).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorGreen).
			Bold(true).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	selectedStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorGreen).
			Bold(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(ColorGreenDark).
			Background(ColorLight).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	highlightCardStyle = cardStyle.
				BorderForeground(ColorGreen)

	dangerStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Italic(true)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorGreen).
			Padding(0, 1)

	aiBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorInk).
			Background(ColorLight).
			Padding(0, 1)
)
