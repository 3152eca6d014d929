package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"fraudshield/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenClock() Clock {
	return func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
}

func exportBatch() (*models.Batch, models.ScoreSet, []models.RiskTier) {
	batch := &models.Batch{
		Features: [][]float64{{1.0}, {2.5}, {3.0}},
		Raw: &models.Dataset{
			Header: []string{"Amount"},
			Rows:   [][]string{{"1.0"}, {"2.5"}, {"3.0"}},
		},
	}
	scores := models.ScoreSet{Values: []float64{0.1, 0.72, 0.35}}
	tiers := []models.RiskTier{models.RiskTierLow, models.RiskTierHigh, models.RiskTierMedium}
	return batch, scores, tiers
}

func TestTabularExport(t *testing.T) {
	assembler := NewAssembler(frozenClock())
	batch, scores, tiers := exportBatch()

	out, err := assembler.TabularExport(batch, scores, tiers)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, len(batch.Raw.Rows)+1)
	assert.Equal(t, []string{"Amount", "fraud_score", "risk_tier"}, records[0])
	assert.Equal(t, []string{"1.0", "0.1", "LOW"}, records[1])
	assert.Equal(t, []string{"2.5", "0.72", "HIGH"}, records[2])
	assert.Equal(t, []string{"3.0", "0.35", "MEDIUM"}, records[3])
}

func TestTabularExport_LengthMismatch(t *testing.T) {
	assembler := NewAssembler(frozenClock())
	batch, scores, _ := exportBatch()

	_, err := assembler.TabularExport(batch, scores, nil)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	assembler := NewAssembler(frozenClock())
	avg := 0.81
	st := &models.BatchStatistics{
		TotalCount:          100,
		LegitimateCount:     97,
		FraudCount:          3,
		FraudRate:           0.03,
		AvgFraudProbability: &avg,
		RiskTier:            models.RiskTierMedium,
	}

	sum := assembler.Summary(st, "models/logistic_regression.json")
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), sum.GeneratedAt)
	assert.Equal(t, "Monitor closely", sum.RiskTierExplanation)
	assert.Equal(t, 0.03, sum.FraudRate)
}

func TestNarrativeText_Reproducible(t *testing.T) {
	assembler := NewAssembler(frozenClock())
	avg := 0.81
	st := &models.BatchStatistics{
		TotalCount:          100,
		LegitimateCount:     97,
		FraudCount:          3,
		FraudRate:           0.03,
		AvgFraudProbability: &avg,
		RiskTier:            models.RiskTierMedium,
	}
	sum := assembler.Summary(st, "model.json")

	first := assembler.NarrativeText(sum, false)
	second := assembler.NarrativeText(sum, false)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "Generated: 2024-05-01 12:00:00")
	assert.Contains(t, first, "- Total Transactions: 100")
	assert.Contains(t, first, "- Fraud Rate: 3.00%")
	assert.Contains(t, first, "- MEDIUM RISK: Monitor closely")
	assert.Contains(t, first, "- Average Fraud Probability: 0.810")
	assert.NotContains(t, first, "degenerate")
}

func TestNarrativeText_DegenerateCaveat(t *testing.T) {
	assembler := NewAssembler(frozenClock())
	avg := 1.0
	st := &models.BatchStatistics{
		TotalCount:          10,
		LegitimateCount:     9,
		FraudCount:          1,
		FraudRate:           0.1,
		AvgFraudProbability: &avg,
		DegenerateScores:    true,
		RiskTier:            models.RiskTierHigh,
	}
	sum := assembler.Summary(st, "model.json")

	text := assembler.NarrativeText(sum, true)
	assert.Contains(t, text, "hard labels only")
}

func TestExportFilename(t *testing.T) {
	assembler := NewAssembler(frozenClock())
	assert.Equal(t, "fraud_predictions_20240501_120000.csv", assembler.ExportFilename())
}
