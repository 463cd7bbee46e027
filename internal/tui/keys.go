package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all client key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Back      key.Binding

	// Bottom bar
	TabHome      key.Binding
	TabMyCourses key.Binding
	TabMentor    key.Binding
	TabProfile   key.Binding

	// Lists
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	PageUp key.Binding
	PageDn key.Binding

	// Screen actions
	ToggleMode key.Binding
	AskMentor  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),

		TabHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "beranda"),
		),
		TabMyCourses: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "kursus saya"),
		),
		TabMentor: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "ai mentor"),
		),
		TabProfile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "profil"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev category"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next category"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDn: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),

		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sign in/register"),
		),
		AskMentor: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "ask mentor"),
		),
	}
}

// tabBindings pairs each bottom bar key with its destination.
func (k KeyMap) tabBindings() []key.Binding {
	return []key.Binding{k.TabHome, k.TabMyCourses, k.TabMentor, k.TabProfile}
}
