package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type splashScreen struct{}

func (*splashScreen) Enter(*Context) tea.Cmd { return nil }

func (*splashScreen) Update(*Context, tea.Msg) (tea.Cmd, *Intent) { return nil, nil }

func (*splashScreen) View(_ *Context, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, renderLogo())
}

// renderLogo renders the brand mark used on splash and login.
func renderLogo() string {
	mark := lipgloss.NewStyle().Foreground(ColorGreen).Render("   ▲\n ◢█▶█◣\n ▀▀▀▀▀")
	name := lipgloss.NewStyle().Foreground(ColorGreenDark).Bold(true).Render("SINAW")
	tagline := mutedStyle.Render("E-LEARNING PLATFORM")
	return lipgloss.JoinVertical(lipgloss.Center, mark, name, tagline)
}
