package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 120 * time.Millisecond

// renderTyping renders the mentor's animated typing indicator.
// The frame is selected based on the current time so it animates on re-render.
func renderTyping() string {
	frame := spinnerFrames[time.Now().UnixMilli()/spinnerInterval.Milliseconds()%int64(len(spinnerFrames))]

	return lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true).
		Render(frame + " Mengetik...")
}

// SpinnerTickMsg triggers a re-render for the typing indicator.
type SpinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// handleSpinnerTick re-schedules spinner ticks while a mentor reply is pending.
func (a *App) handleSpinnerTick() tea.Cmd {
	if a.chat.Busy() {
		return spinnerTick()
	}
	return nil
}
