package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sinaw-id/sinaw/internal/nav"
)

var tabLabels = map[nav.View]string{
	nav.ViewHome:      "Beranda",
	nav.ViewMyCourses: "Kursus Saya",
	nav.ViewMentor:    "AI Mentor",
	nav.ViewProfile:   "Profil",
}

// renderHeader renders the top bar of a detail screen.
func renderHeader(title string, showBack bool, width int) string {
	if showBack {
		title = "← " + title
	}
	return headerStyle.Width(max(width, 1)).Render(title)
}

// renderBottomBar renders the primary tab bar with the active tab highlighted.
func renderBottomBar(active nav.View, width int) string {
	tabs := nav.PrimaryTabs()
	cellWidth := max(width/len(tabs), 1)

	cells := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := string(rune('1'+i)) + " " + tabLabels[tab]
		style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(ColorGray)
		if tab == active {
			style = style.Foreground(ColorGreen).Bold(true)
		}
		cells = append(cells, style.Render(label))
	}

	return lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// renderList renders items one per line, marking the selected row.
func renderList(items []string, selected int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == selected {
			lines[i] = selectedStyle.Render("› " + item)
		} else {
			lines[i] = "  " + item
		}
	}
	return strings.Join(lines, "\n")
}

// clampIndex keeps a cursor inside [0, n).
func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
