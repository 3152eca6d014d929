package models

// RiskTier is the categorical severity of a score or of a whole batch.
type RiskTier string

const (
	RiskTierLow    RiskTier = "LOW"
	RiskTierMedium RiskTier = "MEDIUM"
	RiskTierHigh   RiskTier = "HIGH"
)

// Ordinal returns the tier's position in the severity ordering
// (LOW=0, MEDIUM=1, HIGH=2). Unknown tiers sort below LOW.
func (t RiskTier) Ordinal() int {
	switch t {
	case RiskTierLow:
		return 0
	case RiskTierMedium:
		return 1
	case RiskTierHigh:
		return 2
	default:
		return -1
	}
}

func (t RiskTier) String() string { return string(t) }
