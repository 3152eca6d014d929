package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModelFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_LogisticRegression(t *testing.T) {
	path := writeModelFile(t, "lr.json",
		`{"type":"logistic_regression","weights":[1.0,0.0],"intercept":0.0}`)

	model, err := Load(path)
	require.NoError(t, err)

	lr, ok := model.(*LogisticModel)
	require.True(t, ok)
	assert.Equal(t, 2, lr.NumFeatures())

	probs, err := lr.PredictProbability([][]float64{{-2, 0}, {0, 0}, {2, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 0.1192, probs[0], 1e-4)
	assert.InDelta(t, 0.5, probs[1], 1e-9)
	assert.InDelta(t, 0.8808, probs[2], 1e-4)
	assert.Less(t, probs[0], probs[2])

	labels, err := lr.Predict([][]float64{{-2, 0}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, labels)
}

func TestLogisticModel_WidthMismatch(t *testing.T) {
	lr := &LogisticModel{Weights: []float64{1, 2, 3}}
	_, err := lr.PredictProbability([][]float64{{1, 2}})
	assert.Error(t, err)
}

func TestLoad_DecisionStump(t *testing.T) {
	path := writeModelFile(t, "stump.json",
		`{"type":"decision_stump","feature_index":1,"threshold":5.0}`)

	model, err := Load(path)
	require.NoError(t, err)

	stump, ok := model.(*DecisionStumpModel)
	require.True(t, ok)

	labels, err := stump.Predict([][]float64{{0, 4.9}, {0, 5.0}, {0, 7.2}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, labels)
}

func TestLoad_UnknownType(t *testing.T) {
	path := writeModelFile(t, "other.json", `{"type":"gradient_boosting"}`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown model type")
}

func TestLoad_NoWeights(t *testing.T) {
	path := writeModelFile(t, "empty.json", `{"type":"logistic_regression"}`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "no weights")
}

func TestLoadWithFallback(t *testing.T) {
	good := writeModelFile(t, "good.json",
		`{"type":"logistic_regression","weights":[0.5],"intercept":0}`)

	model, path, err := LoadWithFallback([]string{"does/not/exist.json", good})
	require.NoError(t, err)
	assert.Equal(t, good, path)
	assert.IsType(t, &LogisticModel{}, model)

	_, _, err = LoadWithFallback([]string{"does/not/exist.json"})
	assert.ErrorIs(t, err, ErrNoModel)
}
