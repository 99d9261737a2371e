package catalog

import (
	"reflect"
	"testing"
)

func testCareers() *CareerData {
	return &CareerData{Roles: []Role{
		{
			Title:           "Data Analyst",
			TechnicalSkills: []string{"Python programming", "SQL", "Tableau platform"},
			SoftSkills:      []string{"Written communication", "Team leadership", "Curiosity"},
		},
		{Title: "Product Manager"},
	}}
}

func TestRoleByTitle(t *testing.T) {
	careers := testCareers()

	role, err := careers.RoleByTitle("data analyst")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if role.Title != "Data Analyst" {
		t.Fatalf("got %q", role.Title)
	}

	role, err = careers.RoleByTitle("Analyst")
	if err != nil || role.Title != "Data Analyst" {
		t.Fatalf("substring lookup failed: %v %v", role, err)
	}

	if _, err := careers.RoleByTitle("astronaut"); err != ErrRoleNotFound {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if _, err := careers.RoleByTitle(""); err != ErrRoleNotFound {
		t.Fatalf("empty query should not match, got %v", err)
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{" Python ", "SQL", "python", "", "  "})
	want := []string{"python", "sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTrajectory(t *testing.T) {
	role := Role{
		Title:      "Data Analyst",
		CareerPath: []string{"Senior Data Analyst", "Analytics Manager", "Director of Analytics"},
	}
	levels := role.Trajectory()
	if len(levels) != 6 {
		t.Fatalf("levels = %d, want 6", len(levels))
	}
	if levels[0].Title != "Junior Data Analyst" || levels[2].Title != "Senior Data Analyst" {
		t.Fatalf("unexpected titles: %+v", levels)
	}
	if levels[3].Title != "Senior Data Analyst" || levels[5].Title != "Director of Analytics" {
		t.Fatalf("authored path not appended in order: %+v", levels)
	}
}

func TestTrajectoryWithoutAuthoredPath(t *testing.T) {
	role := Role{Title: "Product Manager"}
	levels := role.Trajectory()
	if len(levels) != 3 {
		t.Fatalf("levels = %d, want 3", len(levels))
	}
}

func TestCategorizeSkills(t *testing.T) {
	careers := testCareers()
	role, _ := careers.RoleByTitle("Data Analyst")
	cats := role.CategorizeSkills()

	if !reflect.DeepEqual(cats.Programming, []string{"Python programming"}) {
		t.Fatalf("programming = %v", cats.Programming)
	}
	if !reflect.DeepEqual(cats.Tools, []string{"Tableau platform"}) {
		t.Fatalf("tools = %v", cats.Tools)
	}
	if !reflect.DeepEqual(cats.Communication, []string{"Written communication"}) {
		t.Fatalf("communication = %v", cats.Communication)
	}
	if !reflect.DeepEqual(cats.Leadership, []string{"Team leadership"}) {
		t.Fatalf("leadership = %v", cats.Leadership)
	}
	if !reflect.DeepEqual(cats.Other, []string{"SQL", "Curiosity"}) {
		t.Fatalf("other = %v", cats.Other)
	}
}

func TestAllSkills(t *testing.T) {
	careers := testCareers()
	got := careers.AllSkills()
	want := []string{"curiosity", "python programming", "sql", "tableau platform", "team leadership", "written communication"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
