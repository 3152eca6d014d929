package models

import "time"

// BatchStatistics is the aggregate result for one scored batch. It is built
// once per run and never mutated.
type BatchStatistics struct {
	TotalCount      int     `json:"total_count"`
	LegitimateCount int     `json:"legitimate_count"`
	FraudCount      int     `json:"fraud_count"`
	FraudRate       float64 `json:"fraud_rate"`

	// AvgFraudProbability is the mean score over rows classified as fraud.
	// Nil when no row was classified as fraud, which is distinct from a
	// zero average.
	AvgFraudProbability *float64 `json:"avg_fraud_probability,omitempty"`

	// DegenerateScores mirrors ScoreSet.Degenerate so report consumers can
	// caveat probability figures.
	DegenerateScores bool `json:"degenerate_scores"`

	RiskTier   RiskTier    `json:"risk_tier"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
}

// Evaluation compares predicted fraud against ground-truth labels. Derived
// metrics (precision, recall) are left to report consumers.
type Evaluation struct {
	TruePositives  int `json:"true_positives"`
	FalsePositives int `json:"false_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalseNegatives int `json:"false_negatives"`
}

// Summary is the narrative report in structured form.
type Summary struct {
	GeneratedAt         time.Time `json:"generated_at"`
	ModelName           string    `json:"model_name"`
	TotalCount          int       `json:"total_count"`
	LegitimateCount     int       `json:"legitimate_count"`
	FraudCount          int       `json:"fraud_count"`
	FraudRate           float64   `json:"fraud_rate"`
	AvgFraudProbability *float64  `json:"avg_fraud_probability,omitempty"`
	RiskTier            RiskTier  `json:"risk_tier"`
	RiskTierExplanation string    `json:"risk_tier_explanation"`
}
