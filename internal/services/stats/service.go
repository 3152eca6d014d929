package stats

import (
	"fmt"
	"math"

	"fraudshield/internal/models"
	"fraudshield/internal/services/risk"
)

// Aggregator computes batch-level statistics from per-row scoring results.
// Identical input always yields identical statistics.
type Aggregator struct {
	classifier *risk.Classifier
}

// NewAggregator creates an aggregator using the given classifier for the
// batch-level tier.
func NewAggregator(classifier *risk.Classifier) *Aggregator {
	if classifier == nil {
		panic("classifier is required")
	}
	return &Aggregator{classifier: classifier}
}

// Aggregate derives BatchStatistics from a scored batch. A row counts as
// fraud when its tier is HIGH, or its ground-truth label is 1 when evaluate
// is set and the batch carries labels. Evaluation counts (predicted tier vs.
// label) are attached only in that mode.
func (a *Aggregator) Aggregate(batch *models.Batch, scores models.ScoreSet, tiers []models.RiskTier, evaluate bool) (*models.BatchStatistics, error) {
	if len(scores.Values) != batch.Len() || len(tiers) != batch.Len() {
		return nil, fmt.Errorf("aggregate: %d rows, %d scores, %d tiers",
			batch.Len(), len(scores.Values), len(tiers))
	}
	for i, v := range scores.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ComputationError{Row: i, Value: v}
		}
	}

	useLabels := evaluate && batch.HasLabels()

	total := batch.Len()
	fraudCount := 0
	var fraudScoreSum float64
	for i := 0; i < total; i++ {
		fraud := tiers[i] == models.RiskTierHigh
		if useLabels {
			fraud = batch.Labels[i] == 1
		}
		if fraud {
			fraudCount++
			fraudScoreSum += scores.Values[i]
		}
	}

	// The validator rejects empty batches, but the division is guarded
	// anyway.
	rate := 0.0
	if total > 0 {
		rate = float64(fraudCount) / float64(total)
	}

	result := &models.BatchStatistics{
		TotalCount:       total,
		LegitimateCount:  total - fraudCount,
		FraudCount:       fraudCount,
		FraudRate:        rate,
		DegenerateScores: scores.Degenerate,
		RiskTier:         a.classifier.ClassifyBatch(rate),
	}
	if fraudCount > 0 {
		avg := fraudScoreSum / float64(fraudCount)
		result.AvgFraudProbability = &avg
	}

	if useLabels {
		result.Evaluation = evaluatePredictions(batch.Labels, tiers)
	}
	return result, nil
}

func evaluatePredictions(labels []int, tiers []models.RiskTier) *models.Evaluation {
	ev := &models.Evaluation{}
	for i, label := range labels {
		predicted := tiers[i] == models.RiskTierHigh
		actual := label == 1
		switch {
		case predicted && actual:
			ev.TruePositives++
		case predicted && !actual:
			ev.FalsePositives++
		case !predicted && actual:
			ev.FalseNegatives++
		default:
			ev.TrueNegatives++
		}
	}
	return ev
}
