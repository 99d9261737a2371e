package chat

import (
	"github.com/acadmentor/advisor/internal/catalog"
	"github.com/acadmentor/advisor/internal/planner"
	"github.com/acadmentor/advisor/internal/skills"
)

// schema.org envelopes, mirrored from the display format the advising UI
// embeds in its pages.

const schemaContext = "https://schema.org"

func structuredPlan(plan *planner.SemesterPlan) map[string]any {
	courses := make([]map[string]any, 0)
	for _, sem := range plan.Semesters {
		for _, code := range sem.Courses {
			courses = append(courses, map[string]any{
				"@type":      "Course",
				"courseCode": code,
				"semester":   sem.Number,
			})
		}
	}
	return map[string]any{
		"@context":           schemaContext,
		"@type":              "EducationalOccupationalCredential",
		"credentialCategory": "degree",
		"name":               plan.Degree,
		"coursePlan":         courses,
	}
}

func structuredCareer(role *catalog.Role) map[string]any {
	return map[string]any{
		"@context":             schemaContext,
		"@type":                "Occupation",
		"name":                 role.Title,
		"description":          role.Description,
		"occupationalCategory": role.Category,
		"skills":               append(append([]string{}, role.TechnicalSkills...), role.SoftSkills...),
	}
}

func structuredGap(report *skills.GapReport) map[string]any {
	recs := make([]map[string]any, 0, len(report.Recommendations))
	for _, r := range report.Recommendations {
		recs = append(recs, map[string]any{
			"@type":       "LearningResource",
			"name":        r.Skill,
			"description": r.EstimatedTime,
		})
	}
	return map[string]any{
		"@context":               schemaContext,
		"@type":                  "SkillAssessment",
		"occupation":             report.RoleTitle,
		"missingTechnicalSkills": report.MissingTechnical,
		"missingSoftSkills":      report.MissingSoft,
		"recommendations":        recs,
	}
}
