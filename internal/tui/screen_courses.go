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

// myCoursesScreen lists every course grouped by category.
type myCoursesScreen struct {
	cursor int
}

func (s *myCoursesScreen) Enter(*Context) tea.Cmd { return nil }

func groupedCourses(ctx *Context) []model.Course {
	var out []model.Course
	for _, cat := range ctx.Catalog.Categories() {
		out = append(out, ctx.Catalog.ByCategory(cat)...)
	}
	return out
}

func (s *myCoursesScreen) Update(ctx *Context, msg tea.Msg) (tea.Cmd, *Intent) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	courses := groupedCourses(ctx)
	switch {
	case key.Matches(km, ctx.Keys.Up):
		s.cursor = clampIndex(s.cursor-1, len(courses))
	case key.Matches(km, ctx.Keys.Down):
		s.cursor = clampIndex(s.cursor+1, len(courses))
	case key.Matches(km, ctx.Keys.Enter):
		if len(courses) > 0 {
			c := courses[clampIndex(s.cursor, len(courses))]
			return nil, navigateTo(nav.ViewCourse, nav.CourseParams{CourseID: c.ID})
		}
	}
	return nil, nil
}

func (s *myCoursesScreen) View(ctx *Context, width, _ int) string {
	courses := groupedCourses(ctx)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Kursus Saya") + "\n")

	lastCat := ""
	for i, c := range courses {
		if c.Category != lastCat {
			b.WriteString("\n" + chipStyle.Render(c.Category) + "\n")
			lastCat = c.Category
		}
		line := fmt.Sprintf("%s  %s", c.Title, mutedStyle.Render(fmt.Sprintf("%d materi", len(c.Videos))))
		b.WriteString(renderList([]string{line}, boolIndex(i == s.cursor)) + "\n")
	}
	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}

// boolIndex adapts a single row to renderList's selected index.
func boolIndex(selected bool) int {
	if selected {
		return 0
	}
	return -1
}

// courseScreen is the course detail view for the id carried in the params.
type courseScreen struct {
	lesson int
}

func (s *courseScreen) Enter(*Context) tea.Cmd {
	s.lesson = 0
	return nil
}

func (s *courseScreen) Update(ctx *Context, msg tea.Msg) (tea.Cmd, *Intent) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	id, _ := ctx.CourseID()
	course, found := ctx.Catalog.Course(id)

	switch {
	case key.Matches(km, ctx.Keys.AskMentor):
		if found {
			return nil, navigateTo(nav.ViewMentor, nil)
		}
	case key.Matches(km, ctx.Keys.Up):
		s.lesson = clampIndex(s.lesson-1, len(course.Videos))
	case key.Matches(km, ctx.Keys.Down):
		s.lesson = clampIndex(s.lesson+1, len(course.Videos))
	}
	return nil, nil
}

func (s *courseScreen) View(ctx *Context, width, _ int) string {
	id, _ := ctx.CourseID()
	course, found := ctx.Catalog.Course(id)
	if !found {
		return lipgloss.JoinVertical(lipgloss.Left,
			renderHeader("Error", true, width),
			lipgloss.NewStyle().Padding(1, 2).Render("Kursus tidak ditemukan."),
		)
	}

	bodyWidth := max(width-4, 10)
	lessons := make([]string, len(course.Videos))
	for i, v := range course.Videos {
		lessons[i] = fmt.Sprintf("%d. %s  %s", i+1, v.Title, mutedStyle.Render(v.Duration))
	}

	parts := []string{
		titleStyle.Render(course.Title),
		chipStyle.Render(course.Category),
		"",
		lipgloss.NewStyle().Width(bodyWidth).Render(course.Description),
		"",
		selectedStyle.Padding(0, 2).Render("▶ Tonton Sekarang") + "  " +
			chipStyle.Render(ctx.Keys.AskMentor.Help().Key+": Tanyakan ke AI Mentor"),
		"",
		titleStyle.Render("Materi Pembelajaran"),
		renderList(lessons, s.lesson),
	}
	if len(course.Videos) > 0 {
		if url := course.Videos[clampIndex(s.lesson, len(course.Videos))].VideoURL; url != "" {
			parts = append(parts, "", mutedStyle.Render(url))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader("Detail Kursus", true, width),
		lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n")),
	)
}
