package ml

import "fmt"

// DecisionStumpModel flags a row as fraud when a single feature crosses a
// threshold. It deliberately exposes no probability capability, so scoring
// falls back to degenerate 0/1 values.
type DecisionStumpModel struct {
	FeatureIndex int
	Threshold    float64
}

// Predict returns a hard label for every row.
func (m *DecisionStumpModel) Predict(features [][]float64) ([]int, error) {
	labels := make([]int, len(features))
	for i, row := range features {
		if m.FeatureIndex >= len(row) {
			return nil, fmt.Errorf("row %d has %d features, model needs index %d",
				i, len(row), m.FeatureIndex)
		}
		if row[m.FeatureIndex] >= m.Threshold {
			labels[i] = 1
		}
	}
	return labels, nil
}
