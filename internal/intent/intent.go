// Package intent routes chat messages to advising handlers with a keyword
// overlap score. It is a heuristic lookup, not a learned model.
package intent

import "strings"

type Intent string

const (
	Degree  Intent = "degree_planning"
	Career  Intent = "career_mentorship"
	Skills  Intent = "skills_analysis"
	General Intent = "general"
)

var (
	degreeKeywords = []string{"degree", "course", "requirement", "curriculum", "plan", "semester", "credit"}
	careerKeywords = []string{"career", "job", "role", "position", "trajectory", "path", "profession"}
	skillsKeywords = []string{"skill", "competency", "gap", "missing", "need", "learn", "ability"}
)

func score(message string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			n++
		}
	}
	return n
}

// Classify scores the message against each category's keyword set and
// returns the best match. Ties resolve in the fixed order degree, career,
// skills; an all-zero score falls back to General.
func Classify(message string) Intent {
	low := strings.ToLower(message)

	best := General
	bestScore := 0
	for _, cand := range []struct {
		intent   Intent
		keywords []string
	}{
		{Degree, degreeKeywords},
		{Career, careerKeywords},
		{Skills, skillsKeywords},
	} {
		if s := score(low, cand.keywords); s > bestScore {
			best = cand.intent
			bestScore = s
		}
	}
	return best
}
