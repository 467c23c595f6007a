package source

import (
	"fmt"

	"github.com/covidmx/serendipia/internal/report"
)

// UnavailableError reports a failed fetch for an explicitly requested
// (date, kind) pair. It wraps the underlying transport or decode error.
type UnavailableError struct {
	Kind report.Kind
	Date string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("no data available for %s at %s: %v", e.Kind, e.Date, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that the backward date search exhausted all
// attempts without finding a published report.
type NotFoundError struct {
	Kind     report.Kind
	Attempts int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no published report found for %s in the last %d days", e.Kind, e.Attempts)
}
