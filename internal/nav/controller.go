package nav

import (
	"fmt"
	"strings"

	"github.com/sinaw-id/sinaw/internal/model"
)

// Frame is a saved return point on the history stack.
type Frame struct {
	View   View
	Params Params
}

// Session is the in-memory record of the signed-in user, the screen on
// display, and the frames to return to. History never contains the current
// screen.
type Session struct {
	User    *model.User
	View    View
	Params  Params
	History []Frame
}

// Transition reports what a navigation call did to the history stack.
type Transition int

const (
	TransitionCleared Transition = iota // tab-to-tab switch, stack emptied
	TransitionPushed                    // drill-down, origin saved
	TransitionPopped                    // back to the saved origin
	TransitionFallback                  // back with nothing saved, shown home
)

func (t Transition) String() string {
	switch t {
	case TransitionCleared:
		return "cleared"
	case TransitionPushed:
		return "pushed"
	case TransitionPopped:
		return "popped"
	case TransitionFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// Controller owns a Session and is its only writer. It is not safe for
// concurrent use; callers serialise access.
type Controller struct {
	session Session
	demo    model.User
}

// New creates a controller at the splash screen with no user. demo is the
// identity assigned on login.
func New(demo model.User) *Controller {
	return &Controller{
		session: Session{View: ViewSplash, Params: NoParams{}},
		demo:    demo,
	}
}

// Current returns the screen on display and its payload.
func (c *Controller) Current() (View, Params) {
	return c.session.View, c.session.Params
}

// User returns the signed-in user, or nil.
func (c *Controller) User() *model.User {
	if c.session.User == nil {
		return nil
	}
	u := *c.session.User
	return &u
}

// Depth returns the number of frames on the history stack.
func (c *Controller) Depth() int {
	return len(c.session.History)
}

// Snapshot returns a deep copy of the session for rendering.
func (c *Controller) Snapshot() Session {
	return Session{
		User:    c.User(),
		View:    c.session.View,
		Params:  c.session.Params,
		History: append([]Frame(nil), c.session.History...),
	}
}

// FinishSplash leaves the splash screen for the login screen. It does nothing
// once the splash is gone.
func (c *Controller) FinishSplash() bool {
	if c.session.View != ViewSplash {
		return false
	}
	c.session.View = ViewLogin
	c.session.Params = NoParams{}
	return true
}

// Navigate shows target. Switching between two primary tabs empties the
// history; any other move saves the current screen first. Unknown views and
// misplaced payloads are rejected and leave the session untouched.
func (c *Controller) Navigate(target View, params Params) (Transition, error) {
	if !target.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidView, int(target))
	}
	p, err := normalizeParams(target, params)
	if err != nil {
		return 0, err
	}

	var tr Transition
	if IsPrimaryTab(target) && IsPrimaryTab(c.session.View) {
		c.session.History = nil
		tr = TransitionCleared
	} else {
		c.session.History = append(c.session.History, Frame{View: c.session.View, Params: c.session.Params})
		tr = TransitionPushed
	}

	c.session.View = target
	c.session.Params = p
	return tr, nil
}

// GoBack returns to the most recent saved frame, removing it from the stack.
// With nothing saved it shows home.
func (c *Controller) GoBack() Transition {
	n := len(c.session.History)
	if n == 0 {
		c.session.View = ViewHome
		c.session.Params = NoParams{}
		return TransitionFallback
	}

	last := c.session.History[n-1]
	c.session.History[n-1] = Frame{}
	c.session.History = c.session.History[:n-1]
	c.session.View = last.View
	c.session.Params = last.Params
	return TransitionPopped
}

// Login signs in with the demo record under the given display name and
// lands on home with an empty stack.
func (c *Controller) Login(displayName string) {
	u := c.demo
	u.Name = displayName
	c.session.User = &u
	c.session.History = nil
	c.session.View = ViewHome
	c.session.Params = NoParams{}
}

// SignIn is the sign-in form flow. Entered credentials are not checked and
// the demo identity is always used.
func (c *Controller) SignIn() {
	c.Login(c.demo.Name)
}

// Register is the sign-up form flow; it signs in under the entered name as
// typed. A blank name is rejected without touching the session.
func (c *Controller) Register(displayName string) error {
	if strings.TrimSpace(displayName) == "" {
		return ErrEmptyName
	}
	c.Login(displayName)
	return nil
}

// Logout drops the user and returns to the login screen with an empty stack.
func (c *Controller) Logout() {
	c.session.User = nil
	c.session.History = nil
	c.session.View = ViewLogin
	c.session.Params = NoParams{}
}

// BottomNavVisible reports whether the bottom tab bar is shown: a user is
// signed in and a primary tab other than the mentor chat is on display.
func (c *Controller) BottomNavVisible() bool {
	return BottomNavVisible(c.session)
}

// BottomNavVisible is the derived visibility rule for a session snapshot.
func BottomNavVisible(s Session) bool {
	return s.User != nil && IsPrimaryTab(s.View) && s.View != ViewMentor
}
