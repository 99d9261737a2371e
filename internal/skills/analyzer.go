// Package skills computes the gap between a student's profile and a target
// role's required skills.
package skills

import (
	"sort"
	"strings"

	"github.com/acadmentor/advisor/internal/catalog"
)

// Default readiness weights. Technical coverage dominates because role
// readiness tracks hiring screens, which filter on hard skills first.
const (
	DefaultTechnicalWeight = 0.7
	DefaultSoftWeight      = 0.3
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"

	CategoryTechnical = "technical"
	CategorySoft      = "soft"
)

// Recommendation is one actionable item for a missing skill.
type Recommendation struct {
	Skill         string   `json:"skill"`
	Category      string   `json:"category"`
	Priority      string   `json:"priority"`
	EstimatedTime string   `json:"estimated_time"`
	Suggestions   []string `json:"suggestions"`
}

// GapReport is the result of analyzing one profile against one role.
// Missing-skill slices are sorted so output ordering is a contract, not an
// artifact of map iteration.
type GapReport struct {
	RoleTitle         string           `json:"role_title"`
	MissingTechnical  []string         `json:"missing_technical"`
	MissingSoft       []string         `json:"missing_soft"`
	TechnicalCoverage float64          `json:"technical_coverage"`
	SoftCoverage      float64          `json:"soft_coverage"`
	Readiness         float64          `json:"readiness"`
	Recommendations   []Recommendation `json:"recommendations"`
}

// Analyzer holds the readiness weights. The zero value is not useful; use
// NewAnalyzer.
type Analyzer struct {
	technicalWeight float64
	softWeight      float64
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{technicalWeight: DefaultTechnicalWeight, softWeight: DefaultSoftWeight}
}

// NewWeightedAnalyzer normalizes the given weights so they sum to 1. Both
// zero falls back to the defaults.
func NewWeightedAnalyzer(technical, soft float64) *Analyzer {
	if technical <= 0 && soft <= 0 {
		return NewAnalyzer()
	}
	total := technical + soft
	return &Analyzer{technicalWeight: technical / total, softWeight: soft / total}
}

// Analyze computes missing skills, per-category coverage, and the weighted
// readiness score for one role. Pure over its inputs and safe for concurrent
// use.
func (a *Analyzer) Analyze(profile catalog.StudentProfile, role catalog.Role) GapReport {
	haveTech := toSet(profile.TechnicalSkills)
	haveSoft := toSet(profile.SoftSkills)
	wantTech := catalog.NormalizeSkills(role.TechnicalSkills)
	wantSoft := catalog.NormalizeSkills(role.SoftSkills)

	missingTech, techCoverage := gap(haveTech, wantTech)
	missingSoft, softCoverage := gap(haveSoft, wantSoft)

	report := GapReport{
		RoleTitle:         role.Title,
		MissingTechnical:  missingTech,
		MissingSoft:       missingSoft,
		TechnicalCoverage: techCoverage,
		SoftCoverage:      softCoverage,
		Readiness:         a.technicalWeight*techCoverage + a.softWeight*softCoverage,
	}
	report.Recommendations = recommend(missingTech, missingSoft)
	return report
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if n := catalog.NormalizeSkill(s); n != "" {
			set[n] = true
		}
	}
	return set
}

// gap returns required-minus-possessed (sorted) and the coverage ratio.
// An empty requirement is fully covered by definition.
func gap(have map[string]bool, want []string) ([]string, float64) {
	if len(want) == 0 {
		return nil, 1.0
	}
	missing := make([]string, 0, len(want))
	covered := 0
	for _, s := range want {
		if have[s] {
			covered++
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(missing)
	return missing, float64(covered) / float64(len(want))
}

// recommend builds one recommendation per missing skill, high priority for
// technical gaps, and orders the list by priority then skill name.
func recommend(missingTech, missingSoft []string) []Recommendation {
	recs := make([]Recommendation, 0, len(missingTech)+len(missingSoft))
	for _, s := range missingTech {
		recs = append(recs, Recommendation{
			Skill:         s,
			Category:      CategoryTechnical,
			Priority:      PriorityHigh,
			EstimatedTime: estimatedTime(CategoryTechnical),
			Suggestions:   suggestionsFor(s, CategoryTechnical),
		})
	}
	for _, s := range missingSoft {
		recs = append(recs, Recommendation{
			Skill:         s,
			Category:      CategorySoft,
			Priority:      PriorityMedium,
			EstimatedTime: estimatedTime(CategorySoft),
			Suggestions:   suggestionsFor(s, CategorySoft),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority == PriorityHigh
		}
		return strings.ToLower(recs[i].Skill) < strings.ToLower(recs[j].Skill)
	})
	return recs
}

// RoleScore summarizes one role in a multi-role comparison.
type RoleScore struct {
	Title            string  `json:"title"`
	Readiness        float64 `json:"readiness"`
	MissingTechnical int     `json:"missing_technical_count"`
	MissingSoft      int     `json:"missing_soft_count"`
}

// RoleComparison ranks roles by readiness for one profile.
type RoleComparison struct {
	Ranking   []RoleScore `json:"ranking"`
	BestMatch string      `json:"best_match,omitempty"`
}

// CompareRoles applies Analyze independently per role and ranks the results
// by readiness descending, ties broken by title.
func (a *Analyzer) CompareRoles(profile catalog.StudentProfile, roles []catalog.Role) RoleComparison {
	scores := make([]RoleScore, 0, len(roles))
	for _, role := range roles {
		report := a.Analyze(profile, role)
		scores = append(scores, RoleScore{
			Title:            role.Title,
			Readiness:        report.Readiness,
			MissingTechnical: len(report.MissingTechnical),
			MissingSoft:      len(report.MissingSoft),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Readiness != scores[j].Readiness {
			return scores[i].Readiness > scores[j].Readiness
		}
		return scores[i].Title < scores[j].Title
	})
	comparison := RoleComparison{Ranking: scores}
	if len(scores) > 0 {
		comparison.BestMatch = scores[0].Title
	}
	return comparison
}
