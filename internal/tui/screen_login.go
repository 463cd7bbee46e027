package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginScreen is the sign-in and register form. Sign-in fields are shown
// prefilled and never read.
type loginScreen struct {
	register bool
	name     textinput.Model
}

func newLoginScreen() *loginScreen {
	ti := textinput.New()
	ti.Placeholder = "Nama Lengkap"
	ti.CharLimit = 64
	ti.Width = 32
	return &loginScreen{name: ti}
}

func (l *loginScreen) Capturing() bool { return l.register }

func (l *loginScreen) Enter(*Context) tea.Cmd {
	l.register = false
	l.name.Reset()
	l.name.Blur()
	return nil
}

func (l *loginScreen) Update(ctx *Context, msg tea.Msg) (tea.Cmd, *Intent) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, ctx.Keys.ToggleMode):
			l.register = !l.register
			if l.register {
				return l.name.Focus(), nil
			}
			l.name.Blur()
			return nil, nil
		case key.Matches(km, ctx.Keys.Enter):
			if l.register {
				return nil, &Intent{Kind: IntentRegister, Name: l.name.Value()}
			}
			return nil, &Intent{Kind: IntentSignIn}
		}
	}

	if !l.register {
		return nil, nil
	}
	var cmd tea.Cmd
	l.name, cmd = l.name.Update(msg)
	return cmd, nil
}

func (l *loginScreen) View(ctx *Context, width, height int) string {
	title, submit, toggle := "Masuk ke Sinaw", "Masuk ke Sinaw", "Belum punya akun? tab: Daftar"
	email, password := ctx.Catalog.DemoUser().Email, "••••••••"
	if l.register {
		title, submit, toggle = "Daftar Akun Baru", "Daftar Sekarang", "Sudah punya akun? tab: Masuk"
		email, password = "", ""
	}

	field := func(label, value string) string {
		if value == "" {
			value = mutedStyle.Render(label)
		}
		return cardStyle.Width(36).Render(value)
	}

	rows := []string{renderLogo(), "", titleStyle.Render(title), ""}
	if l.register {
		rows = append(rows, cardStyle.Width(36).BorderForeground(ColorGreen).Render(l.name.View()))
	}
	rows = append(rows,
		field("Email", email),
		field("Password", password),
		"",
		selectedStyle.Padding(0, 2).Render("enter: "+submit),
		mutedStyle.Render(toggle),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, rows...))
}
