package scoring

import (
	"fmt"

	"fraudshield/internal/models"
)

// Adapter wraps one opaque classifier behind a uniform scoring contract.
// The wrapped model is held read-only for the adapter's lifetime and the
// input batch is never mutated.
type Adapter struct {
	model     Predictor
	withProba ProbabilityPredictor // nil when the model lacks the capability
}

// NewAdapter checks the opaque model value for prediction capabilities.
// A value without the hard-label capability returns ErrNoCapability.
func NewAdapter(model any) (*Adapter, error) {
	p, ok := model.(Predictor)
	if !ok {
		return nil, ErrNoCapability
	}
	a := &Adapter{model: p}
	if pp, ok := model.(ProbabilityPredictor); ok {
		a.withProba = pp
	}
	return a, nil
}

// HasProbability reports whether the wrapped model produces class
// probabilities. When false, Score yields degenerate 0.0/1.0 values.
func (a *Adapter) HasProbability() bool { return a.withProba != nil }

// Score runs inference over the whole batch in one call and returns one
// score per row, in input row order.
func (a *Adapter) Score(batch *models.Batch) (models.ScoreSet, error) {
	if batch.Len() == 0 {
		return models.ScoreSet{Values: []float64{}, Degenerate: a.withProba == nil}, nil
	}

	width := len(batch.Features[0])
	if fc, ok := a.model.(FeatureCounter); ok && fc.NumFeatures() != width {
		return models.ScoreSet{}, &ModelMismatchError{
			ExpectedFeatures: fc.NumFeatures(),
			ActualFeatures:   width,
		}
	}

	if a.withProba != nil {
		probs, err := a.withProba.PredictProbability(batch.Features)
		if err != nil {
			return models.ScoreSet{}, fmt.Errorf("probability inference failed: %w", err)
		}
		if len(probs) != batch.Len() {
			return models.ScoreSet{}, fmt.Errorf(
				"model returned %d probabilities for %d rows", len(probs), batch.Len())
		}
		return models.ScoreSet{Values: probs}, nil
	}

	labels, err := a.model.Predict(batch.Features)
	if err != nil {
		return models.ScoreSet{}, fmt.Errorf("inference failed: %w", err)
	}
	if len(labels) != batch.Len() {
		return models.ScoreSet{}, fmt.Errorf(
			"model returned %d predictions for %d rows", len(labels), batch.Len())
	}

	values := make([]float64, len(labels))
	for i, l := range labels {
		if l != 0 {
			values[i] = 1
		}
	}
	return models.ScoreSet{Values: values, Degenerate: true}, nil
}
