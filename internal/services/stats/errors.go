package stats

import "fmt"

// ComputationError means a score was not a usable number during
// aggregation. The whole batch is aborted rather than skipping the row.
type ComputationError struct {
	Row   int
	Value float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("non-finite score %v at row %d", e.Value, e.Row)
}
