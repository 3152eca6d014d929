// Package ml loads trained classifier parameters from disk. The rest of the
// application treats the loaded model as an opaque value; only the scoring
// adapter inspects its capabilities.
package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// ErrNoModel means none of the candidate model files could be loaded.
var ErrNoModel = errors.New("no usable model file found")

type modelFile struct {
	Type         string    `json:"type"`
	Weights      []float64 `json:"weights,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`
	FeatureIndex int       `json:"feature_index,omitempty"`
	Threshold    float64   `json:"threshold,omitempty"`
}

// Load reads one model definition from path.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}

	switch mf.Type {
	case "logistic_regression":
		if len(mf.Weights) == 0 {
			return nil, fmt.Errorf("model file %s has no weights", path)
		}
		return &LogisticModel{Weights: mf.Weights, Intercept: mf.Intercept}, nil
	case "decision_stump":
		if mf.FeatureIndex < 0 {
			return nil, fmt.Errorf("model file %s has negative feature index", path)
		}
		return &DecisionStumpModel{FeatureIndex: mf.FeatureIndex, Threshold: mf.Threshold}, nil
	default:
		return nil, fmt.Errorf("unknown model type %q in %s", mf.Type, path)
	}
}

// LoadWithFallback returns the first loadable model among paths and the path
// it came from.
func LoadWithFallback(paths []string) (any, string, error) {
	for _, path := range paths {
		model, err := Load(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping model candidate")
			continue
		}
		return model, path, nil
	}
	return nil, "", ErrNoModel
}
