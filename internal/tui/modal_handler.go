package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained overlay that owns its own Update/View lifecycle.
// Modals are managed via a stack on App; the topmost modal receives all input
// and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// pushModal adds m on top of the stack unless a modal with the same ID is
// already open.
func (a *App) pushModal(m Modal) {
	for _, open := range a.modals {
		if open.ID() == m.ID() {
			return
		}
	}
	a.modals = append(a.modals, m)
}

// topModal returns the active modal, or nil.
func (a *App) topModal() Modal {
	if len(a.modals) == 0 {
		return nil
	}
	return a.modals[len(a.modals)-1]
}

func (a *App) popModal() {
	if len(a.modals) > 0 {
		a.modals = a.modals[:len(a.modals)-1]
	}
}
