package catalog

import (
	"errors"
	"strings"
)

var (
	ErrDegreeNotFound = errors.New("degree not found in catalog")
	ErrRoleNotFound   = errors.New("role not found in career data")
)

// Course is the canonical representation of a catalog course. All loaders
// map into this model, and the planner consumes it as-is.
type Course struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

type Degree struct {
	Name         string   `json:"name"`
	Level        string   `json:"level"`
	TotalCredits int      `json:"total_credits"`
	CoreCourses  []Course `json:"core_courses"`
	Electives    []Course `json:"electives,omitempty"`
}

// Catalog holds the reference course data for all degree programs. It is
// loaded once at startup and never mutated, so concurrent readers need no
// locking.
type Catalog struct {
	Degrees []Degree `json:"degrees"`
}

// DegreeByName returns the first degree whose name contains the query,
// case-insensitively. Mirrors how students refer to programs in chat
// ("ms in business analytics" vs the full catalog name).
func (c *Catalog) DegreeByName(name string) (*Degree, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil, ErrDegreeNotFound
	}
	for i := range c.Degrees {
		if strings.Contains(strings.ToLower(c.Degrees[i].Name), q) {
			return &c.Degrees[i], nil
		}
	}
	return nil, ErrDegreeNotFound
}

// CourseIndex maps course code to course for one degree, core and electives
// together.
func (d *Degree) CourseIndex() map[string]Course {
	idx := make(map[string]Course, len(d.CoreCourses)+len(d.Electives))
	for _, c := range d.CoreCourses {
		idx[c.Code] = c
	}
	for _, c := range d.Electives {
		idx[c.Code] = c
	}
	return idx
}
