package analysis

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"
	"time"

	"fraudshield/internal/models"
	"fraudshield/internal/services/dataset"
	"fraudshield/internal/services/report"
	"fraudshield/internal/services/risk"
	"fraudshield/internal/services/scoring"
	"fraudshield/internal/services/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedModel struct {
	probs []float64
}

func (m *scriptedModel) Predict(features [][]float64) ([]int, error) {
	labels := make([]int, len(features))
	for i := range features {
		if m.probs[i] >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}

func (m *scriptedModel) PredictProbability(features [][]float64) ([]float64, error) {
	return m.probs, nil
}

func newPipeline(t *testing.T, model any) Service {
	t.Helper()
	adapter, err := scoring.NewAdapter(model)
	require.NoError(t, err)
	classifier := risk.NewClassifier(risk.Config{})
	clock := func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return NewService(
		dataset.NewService(dataset.Config{}),
		adapter,
		classifier,
		stats.NewAggregator(classifier),
		report.NewAssembler(clock),
		"test-model",
	)
}

func csvUpload(rows int) io.Reader {
	var b strings.Builder
	b.WriteString(strings.Join(models.FeatureColumns(), ","))
	b.WriteString("\n")
	row := strings.Repeat("0.5,", models.FeatureCount) + "10.0\n"
	for i := 0; i < rows; i++ {
		b.WriteString(row)
	}
	return strings.NewReader(b.String())
}

func TestRun_EndToEnd(t *testing.T) {
	pipeline := newPipeline(t, &scriptedModel{probs: []float64{0.1, 0.35, 0.72, 0.05, 0.95}})

	result, err := pipeline.Run(context.Background(), csvUpload(5), RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, []models.RiskTier{
		models.RiskTierLow,
		models.RiskTierMedium,
		models.RiskTierHigh,
		models.RiskTierLow,
		models.RiskTierHigh,
	}, result.Tiers)

	assert.Equal(t, 2, result.Statistics.FraudCount)
	assert.InDelta(t, 0.4, result.Statistics.FraudRate, 1e-9)
	assert.Equal(t, models.RiskTierHigh, result.Statistics.RiskTier)

	records, err := csv.NewReader(bytes.NewReader(result.ExportCSV)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 6)

	assert.Equal(t, "fraud_predictions_20240501_120000.csv", result.ExportFilename)
	assert.Contains(t, result.SummaryText, "- Risk Level: HIGH")
	assert.Contains(t, result.SummaryText, "Model Used: test-model")
}

func TestRun_ValidationFailureStopsPipeline(t *testing.T) {
	pipeline := newPipeline(t, &scriptedModel{probs: []float64{0.5}})

	_, err := pipeline.Run(context.Background(), strings.NewReader("a,b\n1,2\n"), RunOptions{})
	var vErr *dataset.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Problems)
}

func TestRun_ExportPreservesRowCountAndOrder(t *testing.T) {
	probs := []float64{0.9, 0.1, 0.5, 0.2, 0.8, 0.3, 0.05}
	pipeline := newPipeline(t, &scriptedModel{probs: probs})

	result, err := pipeline.Run(context.Background(), csvUpload(len(probs)), RunOptions{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(result.ExportCSV)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(probs)+1)

	scoreCol := len(records[0]) - 2
	assert.Equal(t, "fraud_score", records[0][scoreCol])
	assert.Equal(t, "0.9", records[1][scoreCol])
	assert.Equal(t, "0.05", records[len(probs)][scoreCol])
}
