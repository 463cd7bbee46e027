package tui

import (
	"context"

	"github.com/sinaw-id/sinaw/internal/catalog"
	"github.com/sinaw-id/sinaw/internal/mentor"
	"github.com/sinaw-id/sinaw/internal/nav"
)

// Context provides screens with the current session snapshot and the
// shared read-only collaborators, replacing direct access to *App.
type Context struct {
	Session nav.Session
	Catalog *catalog.Catalog
	Chat    *mentor.Chat
	Mentor  mentor.Service
	Keys    KeyMap

	ReverseScrollWheel bool

	// base is the parent of every mentor call; cancelled on quit.
	base context.Context
}

// CourseID returns the course parameter of the current view, if any.
func (c *Context) CourseID() (int, bool) {
	return nav.CourseID(c.Session.Params)
}
