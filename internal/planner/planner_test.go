package planner

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/acadmentor/advisor/internal/catalog"
)

func testCatalog(courses []catalog.Course) *catalog.Catalog {
	return &catalog.Catalog{
		Degrees: []catalog.Degree{
			{Name: "MS in Testing", CoreCourses: courses},
		},
	}
}

func TestPlanBucketsByPrerequisite(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Name: "Course A", Credits: 3},
		{Code: "B", Name: "Course B", Credits: 3, Prerequisites: []string{"A"}},
		{Code: "C", Name: "Course C", Credits: 3, Prerequisites: []string{"A"}},
	})

	plan, err := Plan(cat, Request{Degree: "Testing", CreditCap: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Semesters) != 2 {
		t.Fatalf("expected 2 semesters, got %d", len(plan.Semesters))
	}
	if !reflect.DeepEqual(plan.Semesters[0].Courses, []string{"A"}) {
		t.Fatalf("semester 1 = %v, want [A]", plan.Semesters[0].Courses)
	}
	if !reflect.DeepEqual(plan.Semesters[1].Courses, []string{"B", "C"}) {
		t.Fatalf("semester 2 = %v, want [B C]", plan.Semesters[1].Courses)
	}
	if plan.Semesters[1].Credits != 6 {
		t.Fatalf("semester 2 credits = %d, want 6", plan.Semesters[1].Credits)
	}
}

func TestPlanPrerequisitesAlwaysEarlier(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Credits: 3},
		{Code: "B", Credits: 3, Prerequisites: []string{"A"}},
		{Code: "C", Credits: 3, Prerequisites: []string{"B"}},
		{Code: "D", Credits: 3},
		{Code: "E", Credits: 3, Prerequisites: []string{"A", "D"}},
	})

	plan, err := Plan(cat, Request{Degree: "Testing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	semOf := map[string]int{}
	seen := map[string]int{}
	for _, sem := range plan.Semesters {
		for _, code := range sem.Courses {
			semOf[code] = sem.Number
			seen[code]++
		}
	}
	for code, n := range seen {
		if n != 1 {
			t.Fatalf("course %s placed %d times", code, n)
		}
	}
	prereqs := map[string][]string{"B": {"A"}, "C": {"B"}, "E": {"A", "D"}}
	for code, ps := range prereqs {
		for _, p := range ps {
			if semOf[p] >= semOf[code] {
				t.Fatalf("prerequisite %s (sem %d) not earlier than %s (sem %d)", p, semOf[p], code, semOf[code])
			}
		}
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "Z", Credits: 3},
		{Code: "M", Credits: 3},
		{Code: "A", Credits: 3},
		{Code: "Q", Credits: 3, Prerequisites: []string{"A"}},
	})
	req := Request{Degree: "Testing", CreditCap: 9}

	first, err := Plan(cat, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Plan(cat, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("plan not deterministic:\n%v\nvs\n%v", first, again)
		}
	}
	if !reflect.DeepEqual(first.Semesters[0].Courses, []string{"A", "M", "Z"}) {
		t.Fatalf("semester 1 = %v, want alphabetical [A M Z]", first.Semesters[0].Courses)
	}
}

func TestPlanCompletedCoursesSatisfyPrerequisites(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Credits: 3},
		{Code: "B", Credits: 3, Prerequisites: []string{"A"}},
	})

	plan, err := Plan(cat, Request{Degree: "Testing", Completed: []string{"A"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Semesters) != 1 || !reflect.DeepEqual(plan.Semesters[0].Courses, []string{"B"}) {
		t.Fatalf("plan = %+v, want B alone in one semester", plan.Semesters)
	}
}

func TestPlanEmptyRemaining(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Credits: 3},
	})

	plan, err := Plan(cat, Request{Degree: "Testing", Completed: []string{"A"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Semesters) != 0 {
		t.Fatalf("expected empty plan, got %+v", plan.Semesters)
	}
	if len(plan.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", plan.Warnings)
	}
}

func TestPlanCycleFails(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Credits: 3, Prerequisites: []string{"B"}},
		{Code: "B", Credits: 3, Prerequisites: []string{"A"}},
	})

	_, err := Plan(cat, Request{Degree: "Testing"})
	var catErr *CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CatalogError, got %v", err)
	}
	if !reflect.DeepEqual(catErr.Courses, []string{"A", "B"}) {
		t.Fatalf("cycle names %v, want [A B]", catErr.Courses)
	}
}

func TestPlanCycleNamesOnlyCycleMembers(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Credits: 3, Prerequisites: []string{"B"}},
		{Code: "B", Credits: 3, Prerequisites: []string{"A"}},
		{Code: "C", Credits: 3, Prerequisites: []string{"A"}},
	})

	_, err := Plan(cat, Request{Degree: "Testing"})
	var catErr *CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CatalogError, got %v", err)
	}
	// C is only blocked behind the cycle, not part of it.
	if !reflect.DeepEqual(catErr.Courses, []string{"A", "B"}) {
		t.Fatalf("cycle names %v, want [A B]", catErr.Courses)
	}
}

func TestPlanDanglingPrerequisiteFails(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Credits: 3, Prerequisites: []string{"GHOST"}},
	})

	_, err := Plan(cat, Request{Degree: "Testing"})
	var catErr *CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CatalogError, got %v", err)
	}
	if catErr.Reason != "unknown prerequisite" {
		t.Fatalf("reason = %q", catErr.Reason)
	}
}

func TestPlanOversizedCourseScheduledAloneWithWarning(t *testing.T) {
	cat := testCatalog([]catalog.Course{
		{Code: "A", Credits: 3},
		{Code: "BIG", Credits: 9},
		{Code: "C", Credits: 3},
	})

	plan, err := Plan(cat, Request{Degree: "Testing", CreditCap: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var bigSem *Semester
	for i := range plan.Semesters {
		for _, code := range plan.Semesters[i].Courses {
			if code == "BIG" {
				bigSem = &plan.Semesters[i]
			}
		}
	}
	if bigSem == nil {
		t.Fatalf("BIG not placed: %+v", plan.Semesters)
	}
	if len(bigSem.Courses) != 1 {
		t.Fatalf("BIG should be alone, got %v", bigSem.Courses)
	}
	if len(plan.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", plan.Warnings)
	}
	if got := plan.Warnings[0]; !strings.Contains(got, "BIG") {
		t.Fatalf("warning %q does not name the course", got)
	}

	for _, sem := range plan.Semesters {
		if sem.Credits > 6 && len(sem.Courses) > 1 {
			t.Fatalf("semester %d exceeds cap with multiple courses: %+v", sem.Number, sem)
		}
	}
}

func TestPlanRequestValidation(t *testing.T) {
	cat := testCatalog([]catalog.Course{{Code: "A", Credits: 3}})

	tests := []struct {
		name string
		req  Request
	}{
		{"negative cap", Request{Degree: "Testing", CreditCap: -1}},
		{"unknown degree", Request{Degree: "Underwater Basket Weaving"}},
		{"completed not in degree", Request{Degree: "Testing", Completed: []string{"NOPE"}}},
		{"year out of range", Request{Degree: "Testing", Year: 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(cat, tt.req)
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected RequestError, got %v", err)
			}
		})
	}
}

func TestPlanSemesterNumberingFollowsYearAndTerm(t *testing.T) {
	cat := testCatalog([]catalog.Course{{Code: "A", Credits: 3}})

	plan, err := Plan(cat, Request{Degree: "Testing", Year: 2, Term: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Semesters[0].Number != 3 {
		t.Fatalf("first semester number = %d, want 3", plan.Semesters[0].Number)
	}
}
