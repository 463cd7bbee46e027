package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sinaw-id/sinaw/internal/mentor"
	"github.com/sinaw-id/sinaw/internal/model"
)

// mentorScreen is the chat with the AI mentor. The log lives in the shared
// mentor.Chat so a reply that lands after leaving the screen is kept.
type mentorScreen struct {
	input    textinput.Model
	viewport viewport.Model
	rendered int // message count at last render, plus one while busy
}

func newMentorScreen() *mentorScreen {
	ti := textinput.New()
	ti.Placeholder = "Tanyakan strategi digital marketing..."
	ti.CharLimit = 500
	return &mentorScreen{
		input:    ti,
		viewport: viewport.New(80, 20),
	}
}

func (m *mentorScreen) Capturing() bool { return true }

func (m *mentorScreen) Enter(*Context) tea.Cmd {
	m.rendered = -1
	return m.input.Focus()
}

func (m *mentorScreen) Update(ctx *Context, msg tea.Msg) (tea.Cmd, *Intent) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ctx.Keys.Enter):
			t, err := ctx.Chat.Begin(m.input.Value())
			if err != nil {
				// Empty or still waiting: nothing is sent and the draft stays.
				return nil, nil
			}
			m.input.Reset()
			return tea.Batch(askMentor(ctx, t), spinnerTick()), nil
		case msg.Type == tea.KeyUp:
			m.viewport.ScrollUp(1)
			return nil, nil
		case msg.Type == tea.KeyDown:
			m.viewport.ScrollDown(1)
			return nil, nil
		case key.Matches(msg, ctx.Keys.PageUp):
			m.viewport.HalfPageUp()
			return nil, nil
		case key.Matches(msg, ctx.Keys.PageDn):
			m.viewport.HalfPageDown()
			return nil, nil
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if ctx.ReverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			m.viewport.ScrollUp(1)
		case down:
			m.viewport.ScrollDown(1)
		}
		return nil, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd, nil
}

// askMentor runs the backend call off the update loop and reports back with
// a mentorReplyMsg.
func askMentor(ctx *Context, t mentor.Ticket) tea.Cmd {
	base, svc, timeout := ctx.base, ctx.Mentor, ctx.Chat.Timeout()
	return func() tea.Msg {
		reply, err := mentor.Ask(base, svc, t.Question.Text, timeout)
		return mentorReplyMsg{ticket: t, text: reply, err: err}
	}
}

func (m *mentorScreen) View(ctx *Context, width, height int) string {
	header := renderHeader("AI Mentor", true, width)
	inputBox := cardStyle.
		BorderForeground(ColorGreen).
		Width(max(width-2, 10)).
		Render(m.input.View())

	m.viewport.Width = width
	m.viewport.Height = max(height-lipgloss.Height(header)-lipgloss.Height(inputBox), 1)

	messages := ctx.Chat.Messages()
	busy := ctx.Chat.Busy()
	m.viewport.SetContent(renderMessages(messages, busy, width))

	// Follow the conversation whenever something new arrives.
	count := len(messages)
	if busy {
		count++
	}
	if count != m.rendered {
		m.viewport.GotoBottom()
		m.rendered = count
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), inputBox)
}

func renderMessages(messages []model.ChatMessage, busy bool, width int) string {
	bubbleWidth := max(width*3/4, 10)
	rows := make([]string, 0, len(messages)+1)
	for _, msg := range messages {
		style, align := aiBubbleStyle, lipgloss.Left
		if msg.Sender == model.SenderUser {
			style, align = userBubbleStyle, lipgloss.Right
		}
		w := min(lipgloss.Width(msg.Text)+2, bubbleWidth)
		rows = append(rows, lipgloss.PlaceHorizontal(width, align, style.Width(w).Render(msg.Text)), "")
	}
	if busy {
		rows = append(rows, aiBubbleStyle.Render(renderTyping()))
	}
	return strings.Join(rows, "\n")
}
