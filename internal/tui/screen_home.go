package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sinaw-id/sinaw/internal/model"
	"github.com/sinaw-id/sinaw/internal/nav"
)

// homeScreen shows the greeting, category chips, and the popular course list.
// Category 0 is "Semua".
type homeScreen struct {
	category int
	cursor   int
}

func (h *homeScreen) Enter(*Context) tea.Cmd { return nil }

func (h *homeScreen) courses(ctx *Context) []model.Course {
	cats := ctx.Catalog.Categories()
	if h.category == 0 || h.category > len(cats) {
		return ctx.Catalog.Courses()
	}
	return ctx.Catalog.ByCategory(cats[h.category-1])
}

func (h *homeScreen) Update(ctx *Context, msg tea.Msg) (tea.Cmd, *Intent) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	courses := h.courses(ctx)
	chips := len(ctx.Catalog.Categories()) + 1

	switch {
	case key.Matches(km, ctx.Keys.Up):
		h.cursor = clampIndex(h.cursor-1, len(courses))
	case key.Matches(km, ctx.Keys.Down):
		h.cursor = clampIndex(h.cursor+1, len(courses))
	case key.Matches(km, ctx.Keys.Left):
		h.category = (h.category + chips - 1) % chips
		h.cursor = 0
	case key.Matches(km, ctx.Keys.Right):
		h.category = (h.category + 1) % chips
		h.cursor = 0
	case key.Matches(km, ctx.Keys.Enter):
		if len(courses) == 0 {
			return nil, nil
		}
		c := courses[clampIndex(h.cursor, len(courses))]
		return nil, navigateTo(nav.ViewCourse, nav.CourseParams{CourseID: c.ID})
	}
	return nil, nil
}

func (h *homeScreen) View(ctx *Context, width, _ int) string {
	name := ""
	if u := ctx.Session.User; u != nil {
		name = u.FirstName()
	}
	greeting := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Hai, %s!", name)),
		mutedStyle.Render("Siap Belajar Hari Ini?"),
	)

	labels := append([]string{"Semua"}, ctx.Catalog.Categories()...)
	chips := make([]string, len(labels))
	for i, label := range labels {
		style := chipStyle
		if i == h.category {
			style = selectedStyle.Padding(0, 1)
		}
		chips[i] = style.Render(label) + " "
	}

	courses := h.courses(ctx)
	rows := make([]string, len(courses))
	for i, c := range courses {
		rows[i] = fmt.Sprintf("%s  %s", c.Title, mutedStyle.Render(c.Category))
	}
	list := renderList(rows, h.cursor)
	if len(courses) == 0 {
		list = mutedStyle.Render("Belum ada kursus di kategori ini.")
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(strings.Join([]string{
		greeting,
		"",
		titleStyle.Render("Kategori Kursus"),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
		"",
		titleStyle.Render("Kursus Populer"),
		list,
	}, "\n"))
}
