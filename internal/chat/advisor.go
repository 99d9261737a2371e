// Package chat coordinates the advising modules behind a single
// message-in, response-out interface.
package chat

import (
	"fmt"
	"strings"
	"sync"

	"github.com/acadmentor/advisor/internal/catalog"
	"github.com/acadmentor/advisor/internal/intent"
	"github.com/acadmentor/advisor/internal/logger"
	"github.com/acadmentor/advisor/internal/planner"
	"github.com/acadmentor/advisor/internal/skills"
)

const historyLimit = 50

// Message is one inbound chat turn plus whatever context the client has
// collected about the student.
type Message struct {
	Text      string                  `json:"message"`
	Degree    string                  `json:"degree,omitempty"`
	Year      int                     `json:"year,omitempty"`
	Term      int                     `json:"term,omitempty"`
	Completed []string                `json:"completed_courses,omitempty"`
	RoleTitle string                  `json:"role_title,omitempty"`
	Profile   *catalog.StudentProfile `json:"profile,omitempty"`
}

// Response is the advisor's reply. Structured carries a schema.org-shaped
// envelope the caller can embed in its own display format.
type Response struct {
	Type       string                `json:"type"`
	Answer     string                `json:"answer"`
	Plan       *planner.SemesterPlan `json:"plan,omitempty"`
	Gap        *skills.GapReport     `json:"gap,omitempty"`
	Role       *catalog.Role         `json:"role,omitempty"`
	Structured map[string]any        `json:"structured_data,omitempty"`
}

type HistoryEntry struct {
	Message string
	Intent  intent.Intent
	Answer  string
}

// Advisor routes messages to the planning, career, and skills handlers. The
// reference data is read-only; only the conversation history mutates, under
// its own lock.
type Advisor struct {
	cat      *catalog.Catalog
	careers  *catalog.CareerData
	analyzer *skills.Analyzer
	log      *logger.Logger

	mu      sync.Mutex
	history []HistoryEntry
}

func NewAdvisor(cat *catalog.Catalog, careers *catalog.CareerData, analyzer *skills.Analyzer, log *logger.Logger) *Advisor {
	return &Advisor{
		cat:      cat,
		careers:  careers,
		analyzer: analyzer,
		log:      log.With("component", "advisor"),
	}
}

// Process classifies the message, dispatches it, and records the turn.
func (a *Advisor) Process(msg Message) (*Response, error) {
	it := intent.Classify(msg.Text)
	a.log.Debug("classified message", "intent", string(it))

	var (
		resp *Response
		err  error
	)
	switch it {
	case intent.Degree:
		resp, err = a.handleDegree(msg)
	case intent.Career:
		resp, err = a.handleCareer(msg)
	case intent.Skills:
		resp, err = a.handleSkills(msg)
	default:
		resp = a.handleGeneral()
	}
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.history = append(a.history, HistoryEntry{Message: msg.Text, Intent: it, Answer: resp.Answer})
	if len(a.history) > historyLimit {
		a.history = a.history[len(a.history)-historyLimit:]
	}
	a.mu.Unlock()

	return resp, nil
}

// History returns a copy of the recorded turns, oldest first.
func (a *Advisor) History() []HistoryEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]HistoryEntry, len(a.history))
	copy(out, a.history)
	return out
}

// ClearHistory drops all recorded turns.
func (a *Advisor) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

func (a *Advisor) handleDegree(msg Message) (*Response, error) {
	if msg.Degree == "" {
		return &Response{
			Type:   string(intent.Degree),
			Answer: "Tell me your degree program (and any completed courses) and I will map out a semester-by-semester plan.",
		}, nil
	}
	plan, err := planner.Plan(a.cat, planner.Request{
		Degree:    msg.Degree,
		Year:      msg.Year,
		Term:      msg.Term,
		Completed: msg.Completed,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Type:       string(intent.Degree),
		Answer:     renderPlan(plan),
		Plan:       plan,
		Structured: structuredPlan(plan),
	}, nil
}

func (a *Advisor) handleCareer(msg Message) (*Response, error) {
	role, err := a.lookupRole(msg)
	if err != nil {
		return nil, err
	}
	return &Response{
		Type:       string(intent.Career),
		Answer:     renderCareer(role),
		Role:       role,
		Structured: structuredCareer(role),
	}, nil
}

func (a *Advisor) handleSkills(msg Message) (*Response, error) {
	role, err := a.lookupRole(msg)
	if err != nil {
		return nil, err
	}
	var profile catalog.StudentProfile
	if msg.Profile != nil {
		profile = *msg.Profile
	}
	report := a.analyzer.Analyze(profile, *role)
	return &Response{
		Type:       string(intent.Skills),
		Answer:     renderGap(&report),
		Gap:        &report,
		Structured: structuredGap(&report),
	}, nil
}

func (a *Advisor) handleGeneral() *Response {
	return &Response{
		Type: string(intent.General),
		Answer: "I can help with degree requirements and semester planning, career paths and salaries, " +
			"and skills-gap analysis against a target role. Ask me about any of those.",
	}
}

// lookupRole prefers the explicit role context, falling back to scanning the
// message for a known role title.
func (a *Advisor) lookupRole(msg Message) (*catalog.Role, error) {
	if msg.RoleTitle != "" {
		return a.careers.RoleByTitle(msg.RoleTitle)
	}
	low := strings.ToLower(msg.Text)
	for i := range a.careers.Roles {
		if strings.Contains(low, strings.ToLower(a.careers.Roles[i].Title)) {
			return &a.careers.Roles[i], nil
		}
	}
	return nil, catalog.ErrRoleNotFound
}

func renderPlan(plan *planner.SemesterPlan) string {
	if len(plan.Semesters) == 0 {
		return fmt.Sprintf("You have already completed every core course for %s.", plan.Degree)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Recommended plan for %s:\n", plan.Degree)
	for _, sem := range plan.Semesters {
		fmt.Fprintf(&b, "Semester %d (%d credits): %s\n", sem.Number, sem.Credits, strings.Join(sem.Courses, ", "))
	}
	for _, w := range plan.Warnings {
		fmt.Fprintf(&b, "Note: %s\n", w)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCareer(role *catalog.Role) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", role.Title, role.Description)
	if len(role.CareerPath) > 0 {
		fmt.Fprintf(&b, "Typical trajectory: %s\n", strings.Join(role.CareerPath, " -> "))
	}
	if role.SalaryRange.High > 0 {
		fmt.Fprintf(&b, "Salary range: $%d - $%d\n", role.SalaryRange.Low, role.SalaryRange.High)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGap(report *skills.GapReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Readiness for %s: %.0f%%\n", report.RoleTitle, report.Readiness*100)
	if len(report.MissingTechnical) > 0 {
		fmt.Fprintf(&b, "Missing technical skills: %s\n", strings.Join(report.MissingTechnical, ", "))
	}
	if len(report.MissingSoft) > 0 {
		fmt.Fprintf(&b, "Missing soft skills: %s\n", strings.Join(report.MissingSoft, ", "))
	}
	if len(report.MissingTechnical) == 0 && len(report.MissingSoft) == 0 {
		b.WriteString("You already cover every required skill for this role.\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
