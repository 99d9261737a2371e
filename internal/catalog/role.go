package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Role describes one career track from the hand-authored career data file.
type Role struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Category        string      `json:"category,omitempty"`
	TechnicalSkills []string    `json:"technical_skills"`
	SoftSkills      []string    `json:"soft_skills"`
	CareerPath      []string    `json:"career_path"`
	SalaryRange     SalaryRange `json:"salary_range"`
}

type SalaryRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// StudentProfile carries a student's current skills, case-normalized.
type StudentProfile struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
}

// CareerData holds the role reference data, loaded once and read-only.
type CareerData struct {
	Roles []Role `json:"careers"`
}

// RoleByTitle returns the first role whose title contains the query,
// case-insensitively.
func (cd *CareerData) RoleByTitle(title string) (*Role, error) {
	q := strings.ToLower(strings.TrimSpace(title))
	if q == "" {
		return nil, ErrRoleNotFound
	}
	for i := range cd.Roles {
		if strings.Contains(strings.ToLower(cd.Roles[i].Title), q) {
			return &cd.Roles[i], nil
		}
	}
	return nil, ErrRoleNotFound
}

// AllSkills returns the union of every skill named across all roles,
// normalized and sorted. The resume matcher uses it as its vocabulary.
func (cd *CareerData) AllSkills() []string {
	seen := map[string]struct{}{}
	for _, r := range cd.Roles {
		for _, s := range append(append([]string{}, r.TechnicalSkills...), r.SoftSkills...) {
			seen[NormalizeSkill(s)] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// NormalizeSkill case-folds and trims one skill string.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSkills normalizes a slice and drops empties and duplicates,
// preserving a sorted order so downstream set output is deterministic.
func NormalizeSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		n := NormalizeSkill(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// TrajectoryLevel is one synthesized rung of a career ladder.
type TrajectoryLevel struct {
	Title              string `json:"title"`
	RequiredExperience string `json:"required_experience"`
}

// Trajectory synthesizes entry/mid/senior levels around a role and appends
// the role's own authored path.
func (r *Role) Trajectory() []TrajectoryLevel {
	levels := []TrajectoryLevel{
		{Title: fmt.Sprintf("Junior %s", r.Title), RequiredExperience: "0-2 years"},
		{Title: fmt.Sprintf("Mid-level %s", r.Title), RequiredExperience: "3-5 years"},
		{Title: fmt.Sprintf("Senior %s", r.Title), RequiredExperience: "6+ years"},
	}
	for _, step := range r.CareerPath {
		levels = append(levels, TrajectoryLevel{Title: step, RequiredExperience: "varies"})
	}
	return levels
}

// SkillCategories buckets a role's skills into coarse groups for display.
type SkillCategories struct {
	Programming   []string `json:"programming"`
	Tools         []string `json:"tools"`
	Communication []string `json:"communication"`
	Leadership    []string `json:"leadership"`
	Other         []string `json:"other"`
}

var (
	programmingKeywords   = []string{"programming", "language", "code", "develop"}
	toolKeywords          = []string{"tool", "software", "platform", "framework"}
	communicationKeywords = []string{"communication", "presentation", "writing"}
	leadershipKeywords    = []string{"leadership", "management", "team"}
)

func matchesAny(skill string, keywords []string) bool {
	low := strings.ToLower(skill)
	for _, kw := range keywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// CategorizeSkills groups a role's technical and soft skills; a skill lands
// in the first bucket it matches, everything unmatched goes to Other.
func (r *Role) CategorizeSkills() SkillCategories {
	var cats SkillCategories
	for _, s := range r.TechnicalSkills {
		switch {
		case matchesAny(s, programmingKeywords):
			cats.Programming = append(cats.Programming, s)
		case matchesAny(s, toolKeywords):
			cats.Tools = append(cats.Tools, s)
		default:
			cats.Other = append(cats.Other, s)
		}
	}
	for _, s := range r.SoftSkills {
		switch {
		case matchesAny(s, communicationKeywords):
			cats.Communication = append(cats.Communication, s)
		case matchesAny(s, leadershipKeywords):
			cats.Leadership = append(cats.Leadership, s)
		default:
			cats.Other = append(cats.Other, s)
		}
	}
	return cats
}
