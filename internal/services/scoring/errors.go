package scoring

import (
	"errors"
	"fmt"
)

// ErrNoCapability means the wrapped value exposes no usable prediction
// capability. It is fatal at adapter construction; scoring is never
// attempted.
var ErrNoCapability = errors.New("model exposes no prediction capability")

// ModelMismatchError means the validated batch's feature shape disagrees
// with what the loaded model expects. It is detected at inference time and
// is a configuration problem, not a dataset problem.
type ModelMismatchError struct {
	ExpectedFeatures int
	ActualFeatures   int
}

func (e *ModelMismatchError) Error() string {
	return fmt.Sprintf("model expects %d features, batch has %d",
		e.ExpectedFeatures, e.ActualFeatures)
}
