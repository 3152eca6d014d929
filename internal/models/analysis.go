package models

import "time"

// Analysis is one completed scoring run, persisted for the history view.
type Analysis struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ModelName       string    `gorm:"not null" json:"model_name"`
	TotalCount      int       `gorm:"not null" json:"total_count"`
	LegitimateCount int       `json:"legitimate_count"`
	FraudCount      int       `json:"fraud_count"`
	FraudRate       float64   `json:"fraud_rate"`
	RiskTier        string    `gorm:"not null" json:"risk_tier"`
	Metadata        JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
