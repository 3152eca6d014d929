package scoring

// The wrapped classifier is opaque: the adapter only cares which of these
// capabilities the concrete value exposes, checked by type assertion at
// construction time.

// Predictor is the minimum capability: batched hard-label prediction
// (0 = legitimate, 1 = fraud) over a 2-D feature matrix.
type Predictor interface {
	Predict(features [][]float64) ([]int, error)
}

// ProbabilityPredictor is the optional capability of reporting the fraud
// class probability per row.
type ProbabilityPredictor interface {
	PredictProbability(features [][]float64) ([]float64, error)
}

// FeatureCounter is the optional capability of reporting the feature width
// the model was trained on, used to detect shape mismatches before
// inference.
type FeatureCounter interface {
	NumFeatures() int
}
