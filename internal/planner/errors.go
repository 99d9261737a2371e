package planner

import (
	"fmt"
	"strings"
)

// CatalogError reports inconsistent reference data: a prerequisite cycle or
// a dangling prerequisite reference. The offending course codes are always
// named so the data can be fixed; the planner never emits a partial plan
// around them.
type CatalogError struct {
	Reason  string
	Courses []string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog inconsistency: %s: %s", e.Reason, strings.Join(e.Courses, ", "))
}

// RequestError reports an invalid plan request, such as a non-positive
// credit cap or an unknown degree.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}
