package scoring

import (
	"testing"

	"fraudshield/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbModel struct {
	probs []float64
}

func (m *fakeProbModel) Predict(features [][]float64) ([]int, error) {
	labels := make([]int, len(features))
	for i := range features {
		if m.probs[i] >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}

func (m *fakeProbModel) PredictProbability(features [][]float64) ([]float64, error) {
	return m.probs, nil
}

type fakeHardModel struct{}

func (fakeHardModel) Predict(features [][]float64) ([]int, error) {
	labels := make([]int, len(features))
	for i, row := range features {
		if row[0] >= 1 {
			labels[i] = 1
		}
	}
	return labels, nil
}

type fixedWidthModel struct {
	fakeProbModel
	width int
}

func (m *fixedWidthModel) NumFeatures() int { return m.width }

func makeBatch(rows ...[]float64) *models.Batch {
	return &models.Batch{Features: rows}
}

func TestNewAdapter_CapabilityCheck(t *testing.T) {
	_, err := NewAdapter(struct{}{})
	assert.ErrorIs(t, err, ErrNoCapability)

	adapter, err := NewAdapter(fakeHardModel{})
	require.NoError(t, err)
	assert.False(t, adapter.HasProbability())

	adapter, err = NewAdapter(&fakeProbModel{})
	require.NoError(t, err)
	assert.True(t, adapter.HasProbability())
}

func TestScore_Probabilities(t *testing.T) {
	adapter, err := NewAdapter(&fakeProbModel{probs: []float64{0.1, 0.35, 0.72}})
	require.NoError(t, err)

	scores, err := adapter.Score(makeBatch([]float64{1}, []float64{2}, []float64{3}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.35, 0.72}, scores.Values)
	assert.False(t, scores.Degenerate)
}

func TestScore_HardLabelsAreDegenerate(t *testing.T) {
	adapter, err := NewAdapter(fakeHardModel{})
	require.NoError(t, err)

	scores, err := adapter.Score(makeBatch([]float64{2}, []float64{0}, []float64{5}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, scores.Values)
	assert.True(t, scores.Degenerate)
}

func TestScore_ShapeMismatch(t *testing.T) {
	model := &fixedWidthModel{width: 29}
	model.probs = []float64{0.5}

	adapter, err := NewAdapter(model)
	require.NoError(t, err)

	_, err = adapter.Score(makeBatch([]float64{1, 2, 3}))
	var mismatch *ModelMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 29, mismatch.ExpectedFeatures)
	assert.Equal(t, 3, mismatch.ActualFeatures)
}

func TestScore_EmptyBatch(t *testing.T) {
	adapter, err := NewAdapter(&fakeProbModel{})
	require.NoError(t, err)

	scores, err := adapter.Score(&models.Batch{})
	require.NoError(t, err)
	assert.Empty(t, scores.Values)
}

func TestScore_DoesNotMutateBatch(t *testing.T) {
	adapter, err := NewAdapter(&fakeProbModel{probs: []float64{0.9}})
	require.NoError(t, err)

	batch := makeBatch([]float64{1, 2})
	_, err = adapter.Score(batch)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}}, batch.Features)
}
