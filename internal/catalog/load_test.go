package catalog

import (
	"strings"
	"testing"
)

const validCatalogJSON = `{
  "degrees": [
    {
      "name": "MS in Business Analytics",
      "level": "graduate",
      "total_credits": 36,
      "core_courses": [
        {"code": "BUAN 6320", "name": "Database Foundations", "credits": 3},
        {"code": "BUAN 6356", "name": "Business Analytics with R", "credits": 3, "prerequisites": ["BUAN 6320"]}
      ]
    }
  ]
}`

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(strings.NewReader(validCatalogJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Degrees) != 1 {
		t.Fatalf("degrees = %d, want 1", len(cat.Degrees))
	}
	d := cat.Degrees[0]
	if d.TotalCredits != 36 || len(d.CoreCourses) != 2 {
		t.Fatalf("degree decoded wrong: %+v", d)
	}
}

func TestLoadCatalogRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			"negative credits",
			`{"degrees":[{"name":"D","core_courses":[{"code":"A","name":"a","credits":-3}]}]}`,
			"non-positive credits",
		},
		{
			"zero credits",
			`{"degrees":[{"name":"D","core_courses":[{"code":"A","name":"a","credits":0}]}]}`,
			"non-positive credits",
		},
		{
			"empty course code",
			`{"degrees":[{"name":"D","core_courses":[{"name":"a","credits":3}]}]}`,
			"empty code",
		},
		{
			"empty degree name",
			`{"degrees":[{"core_courses":[{"code":"A","name":"a","credits":3}]}]}`,
			"empty name",
		},
		{
			"dangling prerequisite",
			`{"degrees":[{"name":"D","core_courses":[{"code":"A","name":"a","credits":3,"prerequisites":["GHOST"]}]}]}`,
			"not in degree",
		},
		{
			"malformed json",
			`{"degrees":`,
			"decoding catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestDegreeByName(t *testing.T) {
	cat, err := LoadCatalog(strings.NewReader(validCatalogJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := cat.DegreeByName("business analytics")
	if err != nil {
		t.Fatalf("substring lookup failed: %v", err)
	}
	if d.Name != "MS in Business Analytics" {
		t.Fatalf("got %q", d.Name)
	}

	if _, err := cat.DegreeByName("philosophy"); err != ErrDegreeNotFound {
		t.Fatalf("expected ErrDegreeNotFound, got %v", err)
	}
	if _, err := cat.DegreeByName("  "); err != ErrDegreeNotFound {
		t.Fatalf("blank query should not match, got %v", err)
	}
}

func TestLoadCareerDataRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty title", `{"careers":[{"description":"x"}]}`},
		{"inverted salary range", `{"careers":[{"title":"T","salary_range":{"low":100,"high":50}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCareerData(strings.NewReader(tt.json)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
