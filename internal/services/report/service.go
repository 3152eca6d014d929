package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fraudshield/internal/models"
)

// Clock supplies the generation timestamp. Injectable so identical
// statistics render byte-identical reports in tests.
type Clock func() time.Time

// Assembler renders scored batches into exportable artifacts. It builds
// in-memory artifacts only; persisting them is the caller's business.
type Assembler struct {
	clock Clock
}

// NewAssembler creates an assembler. A nil clock falls back to time.Now.
func NewAssembler(clock Clock) *Assembler {
	if clock == nil {
		clock = time.Now
	}
	return &Assembler{clock: clock}
}

// TabularExport renders the original rows with fraud_score and risk_tier
// columns appended, preserving input row order and any extra input columns.
func (a *Assembler) TabularExport(batch *models.Batch, scores models.ScoreSet, tiers []models.RiskTier) ([]byte, error) {
	if len(scores.Values) != batch.Len() || len(tiers) != batch.Len() {
		return nil, fmt.Errorf("export: %d rows, %d scores, %d tiers",
			batch.Len(), len(scores.Values), len(tiers))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string{}, batch.Raw.Header...), "fraud_score", "risk_tier")
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, row := range batch.Raw.Rows {
		record := append(append([]string{}, row...),
			strconv.FormatFloat(scores.Values[i], 'f', -1, 64),
			tiers[i].String())
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Summary builds the structured narrative report from batch statistics.
func (a *Assembler) Summary(st *models.BatchStatistics, modelName string) models.Summary {
	return models.Summary{
		GeneratedAt:         a.clock().UTC(),
		ModelName:           modelName,
		TotalCount:          st.TotalCount,
		LegitimateCount:     st.LegitimateCount,
		FraudCount:          st.FraudCount,
		FraudRate:           st.FraudRate,
		AvgFraudProbability: st.AvgFraudProbability,
		RiskTier:            st.RiskTier,
		RiskTierExplanation: TierExplanation(st.RiskTier),
	}
}

// TierExplanation returns the plain-language reading of a batch tier.
func TierExplanation(tier models.RiskTier) string {
	switch tier {
	case models.RiskTierHigh:
		return "Immediate attention required"
	case models.RiskTierMedium:
		return "Monitor closely"
	default:
		return "Normal operations"
	}
}

// NarrativeText renders the summary as a plain-text report.
func (a *Assembler) NarrativeText(sum models.Summary, degenerate bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Fraud Detection Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", sum.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Summary:\n")
	fmt.Fprintf(&b, "- Total Transactions: %d\n", sum.TotalCount)
	fmt.Fprintf(&b, "- Legitimate Transactions: %d\n", sum.LegitimateCount)
	fmt.Fprintf(&b, "- Fraudulent Transactions: %d\n", sum.FraudCount)
	fmt.Fprintf(&b, "- Fraud Rate: %.2f%%\n", sum.FraudRate*100)
	fmt.Fprintf(&b, "- Risk Level: %s\n\n", sum.RiskTier)
	fmt.Fprintf(&b, "Model Used: %s\n\n", sum.ModelName)
	fmt.Fprintf(&b, "Risk Assessment:\n")
	fmt.Fprintf(&b, "- %s RISK: %s\n", sum.RiskTier, TierExplanation(sum.RiskTier))

	if sum.AvgFraudProbability != nil {
		fmt.Fprintf(&b, "\nProbability Analysis:\n")
		fmt.Fprintf(&b, "- Average Fraud Probability: %.3f\n", *sum.AvgFraudProbability)
		if degenerate {
			fmt.Fprintf(&b, "- Note: model reports hard labels only, probability figures are degenerate\n")
		}
	}
	return b.String()
}

// ExportFilename returns the caller-visible download name carrying the
// generation timestamp.
func (a *Assembler) ExportFilename() string {
	return fmt.Sprintf("fraud_predictions_%s.csv", a.clock().UTC().Format("20060102_150405"))
}
