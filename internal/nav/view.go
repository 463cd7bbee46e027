// Package nav implements the session state machine: which screen is shown,
// the back-stack of drill-down frames, and the login/logout resets.
package nav

import (
	"errors"
	"fmt"
)

// View identifies one screen of the app. The set is closed.
type View int

const (
	ViewSplash View = iota
	ViewLogin
	ViewHome
	ViewMyCourses
	ViewCourse
	ViewMentor
	ViewProfile
	ViewSubscription
	ViewCertificate
	ViewSettings
	ViewEditProfile

	viewCount // sentinel, keep last
)

var (
	// ErrInvalidView is returned for view identifiers outside the closed set.
	ErrInvalidView = errors.New("nav: invalid view")
	// ErrParamsMismatch is returned when a payload is paired with a view
	// that does not accept it.
	ErrParamsMismatch = errors.New("nav: params do not belong to view")
	// ErrEmptyName is returned by Register when no display name is given.
	ErrEmptyName = errors.New("nav: display name is required")
)

var viewNames = [viewCount]string{
	ViewSplash:       "splash",
	ViewLogin:        "login",
	ViewHome:         "home",
	ViewMyCourses:    "my-courses",
	ViewCourse:       "course",
	ViewMentor:       "mentor",
	ViewProfile:      "profile",
	ViewSubscription: "subscription",
	ViewCertificate:  "certificate",
	ViewSettings:     "settings",
	ViewEditProfile:  "edit-profile",
}

// primaryTabs lists the bottom-bar destinations in display order.
var primaryTabs = []View{ViewHome, ViewMyCourses, ViewMentor, ViewProfile}

// Valid reports whether v is a member of the closed view set.
func (v View) Valid() bool {
	return v >= 0 && v < viewCount
}

func (v View) String() string {
	if !v.Valid() {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// ParseView maps a wire name back to its View.
func ParseView(name string) (View, error) {
	for i, n := range viewNames {
		if n == name {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidView, name)
}

// IsPrimaryTab reports whether v is reachable from the bottom navigation bar.
// Both the stack-clearing rule and bottom bar visibility read this.
func IsPrimaryTab(v View) bool {
	for _, tab := range primaryTabs {
		if tab == v {
			return true
		}
	}
	return false
}

// PrimaryTabs returns the bottom-bar destinations in display order.
func PrimaryTabs() []View {
	return append([]View(nil), primaryTabs...)
}

// MarshalText encodes the view by its wire name.
func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidView, int(v))
	}
	return []byte(viewNames[v]), nil
}

// UnmarshalText decodes a wire name.
func (v *View) UnmarshalText(text []byte) error {
	parsed, err := ParseView(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
