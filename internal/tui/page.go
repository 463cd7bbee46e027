package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sinaw-id/sinaw/internal/nav"
)

// Screen renders one view of the session and turns input into intents.
type Screen interface {
	// Enter is called each time the screen becomes current.
	Enter(ctx *Context) tea.Cmd
	Update(ctx *Context, msg tea.Msg) (tea.Cmd, *Intent)
	View(ctx *Context, width, height int) string
}

// Capturing is implemented by screens with a focused text field. While it
// reports true, single-character global keys go to the field instead.
type Capturing interface {
	Capturing() bool
}

// IntentKind identifies what a screen wants the controller to do.
type IntentKind int

const (
	IntentNavigate IntentKind = iota
	IntentBack
	IntentSignIn
	IntentRegister
	IntentLogout
)

// Intent is returned from Update to request a session change. Screens never
// touch the controller directly.
type Intent struct {
	Kind   IntentKind
	View   nav.View
	Params nav.Params
	Name   string
}

func navigateTo(v nav.View, p nav.Params) *Intent {
	return &Intent{Kind: IntentNavigate, View: v, Params: p}
}
