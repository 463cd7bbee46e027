package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpModal renders the help modal using the provided viewport.
func renderHelpModal(vp *viewport.Model, keys KeyMap, width, height int) string {
	modalWidth := max(width-8, 20)   // 4 chars margin on each side
	modalHeight := max(height-4, 8) // 2 lines margin top and bottom

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(helpContent(keys)))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorGreen).
		Bold(true).
		Render("Bantuan")

	statusBar := mutedStyle.Render("up/down/Wheel: Scroll | PgUp/PgDn: Page | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGreen).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

func helpContent(k KeyMap) string {
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"GLOBAL", []key.Binding{k.Back, k.Help, k.Quit, k.ForceQuit}},
		{"BOTTOM BAR", k.tabBindings()},
		{"LISTS", []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Enter, k.PageUp, k.PageDn}},
		{"SCREENS", []key.Binding{k.ToggleMode, k.AskMentor}},
	}

	var b strings.Builder
	b.WriteString("Sinaw - belajar digital marketing\n\n")
	for _, s := range sections {
		b.WriteString(s.title + ":\n")
		for _, kb := range s.bindings {
			h := kb.Help()
			fmt.Fprintf(&b, "  %-10s - %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("The bottom bar is hidden on detail screens and in the mentor chat;\n")
	b.WriteString("use esc to go back from there.\n")
	return b.String()
}
