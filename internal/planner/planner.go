// Package planner sequences a student's remaining courses into future
// semesters, honoring prerequisites and a per-semester credit cap.
package planner

import (
	"fmt"
	"sort"

	"github.com/acadmentor/advisor/internal/catalog"
)

// DefaultCreditCap is a typical full-time load.
const DefaultCreditCap = 15

// Request describes one degree-plan computation.
type Request struct {
	Degree    string   `json:"degree"`
	Year      int      `json:"year"`
	Term      int      `json:"term"`
	Completed []string `json:"completed_courses"`
	CreditCap int      `json:"credit_cap"`
}

// Semester is one bucket of the produced plan. Courses are ordered by the
// deterministic tie-break (ascending course code).
type Semester struct {
	Number  int      `json:"semester"`
	Courses []string `json:"courses"`
	Credits int      `json:"total_credits"`
}

// SemesterPlan is the ordered sequence of semesters for the remaining
// coursework. Warnings carry non-fatal diagnostics, such as a single course
// whose credit hours exceed the cap.
type SemesterPlan struct {
	Degree    string     `json:"degree"`
	Semesters []Semester `json:"semesters"`
	Warnings  []string   `json:"warnings,omitempty"`
}

// Plan filters the degree's courses down to the ones still outstanding,
// orders them by prerequisite, and buckets them greedily under the credit
// cap. Identical inputs always yield identical plans.
func Plan(cat *catalog.Catalog, req Request) (*SemesterPlan, error) {
	if req.CreditCap < 0 {
		return nil, &RequestError{Field: "credit_cap", Reason: fmt.Sprintf("must be positive, got %d", req.CreditCap)}
	}
	creditCap := req.CreditCap
	if creditCap == 0 {
		creditCap = DefaultCreditCap
	}
	if req.Year < 0 || req.Year > 8 {
		return nil, &RequestError{Field: "year", Reason: fmt.Sprintf("out of range: %d", req.Year)}
	}
	if req.Term < 0 || req.Term > 2 {
		return nil, &RequestError{Field: "term", Reason: fmt.Sprintf("out of range: %d", req.Term)}
	}

	degree, err := cat.DegreeByName(req.Degree)
	if err != nil {
		return nil, &RequestError{Field: "degree", Reason: fmt.Sprintf("unknown degree %q", req.Degree)}
	}

	idx := degree.CourseIndex()
	completed := make(map[string]bool, len(req.Completed))
	for _, code := range req.Completed {
		if _, ok := idx[code]; !ok {
			return nil, &RequestError{Field: "completed_courses", Reason: fmt.Sprintf("course %s is not in degree %q", code, degree.Name)}
		}
		completed[code] = true
	}

	// Remaining work is the degree's core courses minus what is done.
	remaining := make(map[string]catalog.Course)
	for _, c := range degree.CoreCourses {
		if !completed[c.Code] {
			remaining[c.Code] = c
		}
	}

	// Every prerequisite must resolve inside the degree or the completed
	// set before sequencing starts.
	var dangling []string
	for _, c := range remaining {
		for _, p := range c.Prerequisites {
			if _, ok := idx[p]; !ok && !completed[p] {
				dangling = append(dangling, fmt.Sprintf("%s -> %s", c.Code, p))
			}
		}
	}
	if len(dangling) > 0 {
		sort.Strings(dangling)
		return nil, &CatalogError{Reason: "unknown prerequisite", Courses: dangling}
	}

	plan := &SemesterPlan{Degree: degree.Name}
	if len(remaining) == 0 {
		return plan, nil
	}

	year, term := req.Year, req.Term
	if year == 0 {
		year = 1
	}
	if term == 0 {
		term = 1
	}
	number := (year-1)*2 + term

	// placed maps course code to the semester number it landed in. A
	// prerequisite is satisfied only by completion or by placement in a
	// strictly earlier semester.
	placed := make(map[string]int, len(remaining))
	for len(remaining) > 0 {
		eligible := make([]string, 0, len(remaining))
		for code, c := range remaining {
			ok := true
			for _, p := range c.Prerequisites {
				if completed[p] {
					continue
				}
				if sem, done := placed[p]; done && sem < number {
					continue
				}
				ok = false
				break
			}
			if ok {
				eligible = append(eligible, code)
			}
		}
		if len(eligible) == 0 {
			// Nothing can be placed and courses remain: the
			// prerequisite graph has a cycle among them.
			return nil, &CatalogError{Reason: "prerequisite cycle", Courses: cycleMembers(remaining)}
		}
		sort.Strings(eligible)

		sem := Semester{Number: number}
		for _, code := range eligible {
			c := remaining[code]
			if c.Credits > creditCap && len(sem.Courses) == 0 {
				// Cap is advisory for a course that alone
				// exceeds it: schedule it by itself and warn.
				sem.Courses = append(sem.Courses, code)
				sem.Credits += c.Credits
				placed[code] = number
				delete(remaining, code)
				plan.Warnings = append(plan.Warnings,
					fmt.Sprintf("course %s (%d credits) exceeds the %d-credit semester cap and is scheduled alone in semester %d", code, c.Credits, creditCap, number))
				break
			}
			if sem.Credits+c.Credits > creditCap {
				break
			}
			sem.Courses = append(sem.Courses, code)
			sem.Credits += c.Credits
			placed[code] = number
			delete(remaining, code)
		}
		plan.Semesters = append(plan.Semesters, sem)
		number++
	}
	return plan, nil
}

// cycleMembers narrows an unplaceable set down to the courses on a
// prerequisite cycle. Courses that are merely blocked downstream of the
// cycle are peeled off: a course stays only while some surviving course
// still lists it as a prerequisite.
func cycleMembers(remaining map[string]catalog.Course) []string {
	survivors := make(map[string]bool, len(remaining))
	for code := range remaining {
		survivors[code] = true
	}
	for changed := true; changed; {
		changed = false
		needed := make(map[string]bool, len(survivors))
		for code := range survivors {
			for _, p := range remaining[code].Prerequisites {
				if survivors[p] {
					needed[p] = true
				}
			}
		}
		for code := range survivors {
			if !needed[code] {
				delete(survivors, code)
				changed = true
			}
		}
	}
	out := make([]string, 0, len(survivors))
	for code := range survivors {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
