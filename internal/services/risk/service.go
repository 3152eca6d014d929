package risk

import "fraudshield/internal/models"

// Default classification thresholds. Row thresholds apply to fraud
// probabilities, batch thresholds to the batch fraud rate.
const (
	DefaultLowThreshold  = 0.3
	DefaultHighThreshold = 0.7
	DefaultBatchLowRate  = 0.02
	DefaultBatchHighRate = 0.05
)

// Config holds the classification thresholds. Zero values fall back to the
// defaults, so stricter and looser configurations can coexist in one
// process.
type Config struct {
	LowThreshold  float64
	HighThreshold float64
	BatchLowRate  float64
	BatchHighRate float64
}

// Classifier maps row scores and batch fraud rates onto risk tiers.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier, filling unset thresholds with the
// defaults.
func NewClassifier(cfg Config) *Classifier {
	if cfg.LowThreshold == 0 {
		cfg.LowThreshold = DefaultLowThreshold
	}
	if cfg.HighThreshold == 0 {
		cfg.HighThreshold = DefaultHighThreshold
	}
	if cfg.BatchLowRate == 0 {
		cfg.BatchLowRate = DefaultBatchLowRate
	}
	if cfg.BatchHighRate == 0 {
		cfg.BatchHighRate = DefaultBatchHighRate
	}
	return &Classifier{config: cfg}
}

// ClassifyRow maps a fraud probability to a tier. Lower bounds are closed:
// a score exactly at LowThreshold is MEDIUM, exactly at HighThreshold is
// HIGH.
func (c *Classifier) ClassifyRow(score float64) models.RiskTier {
	switch {
	case score >= c.config.HighThreshold:
		return models.RiskTierHigh
	case score >= c.config.LowThreshold:
		return models.RiskTierMedium
	default:
		return models.RiskTierLow
	}
}

// ClassifyBatch maps a batch fraud rate to a tier, with the same closed
// lower bounds as ClassifyRow.
func (c *Classifier) ClassifyBatch(rate float64) models.RiskTier {
	switch {
	case rate >= c.config.BatchHighRate:
		return models.RiskTierHigh
	case rate >= c.config.BatchLowRate:
		return models.RiskTierMedium
	default:
		return models.RiskTierLow
	}
}

// ClassifyAll classifies every score, preserving row order.
func (c *Classifier) ClassifyAll(scores []float64) []models.RiskTier {
	tiers := make([]models.RiskTier, len(scores))
	for i, s := range scores {
		tiers[i] = c.ClassifyRow(s)
	}
	return tiers
}
