package ml

import (
	"fmt"
	"math"
)

// LogisticModel is a binary logistic-regression classifier built from
// exported coefficients. It exposes both hard labels and fraud-class
// probabilities.
type LogisticModel struct {
	Weights   []float64
	Intercept float64
}

func (m *LogisticModel) NumFeatures() int { return len(m.Weights) }

// PredictProbability returns the fraud-class probability for every row.
func (m *LogisticModel) PredictProbability(features [][]float64) ([]float64, error) {
	out := make([]float64, len(features))
	for i, row := range features {
		if len(row) != len(m.Weights) {
			return nil, fmt.Errorf("row %d has %d features, model expects %d",
				i, len(row), len(m.Weights))
		}
		z := m.Intercept
		for j, w := range m.Weights {
			z += w * row[j]
		}
		out[i] = 1 / (1 + math.Exp(-z))
	}
	return out, nil
}

// Predict returns hard labels at the 0.5 decision boundary.
func (m *LogisticModel) Predict(features [][]float64) ([]int, error) {
	probs, err := m.PredictProbability(features)
	if err != nil {
		return nil, err
	}
	labels := make([]int, len(probs))
	for i, p := range probs {
		if p >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}
