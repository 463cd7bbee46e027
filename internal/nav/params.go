package nav

import "fmt"

// Params is the payload carried alongside a view. Each concrete type names
// the views it may travel with; NoParams goes with any view.
type Params interface {
	accepts(v View) bool
}

// NoParams is the empty payload.
type NoParams struct{}

func (NoParams) accepts(View) bool { return true }

// CourseParams selects the course shown on the course detail screen.
type CourseParams struct {
	CourseID int `json:"course_id"`
}

func (CourseParams) accepts(v View) bool { return v == ViewCourse }

// normalizeParams maps nil to NoParams and rejects payloads that belong to
// another destination.
func normalizeParams(v View, p Params) (Params, error) {
	if p == nil {
		return NoParams{}, nil
	}
	if !p.accepts(v) {
		return nil, fmt.Errorf("%w: %T for %s", ErrParamsMismatch, p, v)
	}
	return p, nil
}

// CourseID extracts the course identifier from p, if it carries one.
func CourseID(p Params) (int, bool) {
	cp, ok := p.(CourseParams)
	if !ok {
		return 0, false
	}
	return cp.CourseID, true
}
