package dataset

import (
	"fmt"
	"strings"
)

// ValidationError reports every problem found in an uploaded dataset in one
// pass, so the caller gets the complete diagnostic picture in one exchange.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset validation failed: %s", strings.Join(e.Problems, "; "))
}

func newValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}
