package models

import "fmt"

// Column naming follows the anonymized credit-card dataset: 28
// principal-component features V1..V28, the transaction amount, and an
// optional ground-truth class column (0 = legitimate, 1 = fraud).
const (
	FeatureCount = 28
	AmountColumn = "Amount"
	LabelColumn  = "Class"
)

// FeatureColumns returns the required column names in canonical order:
// V1..V28 followed by Amount.
func FeatureColumns() []string {
	cols := make([]string, 0, FeatureCount+1)
	for i := 1; i <= FeatureCount; i++ {
		cols = append(cols, fmt.Sprintf("V%d", i))
	}
	return append(cols, AmountColumn)
}

// Dataset is a parsed tabular upload before validation: the header row and
// string cells exactly as read.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// Batch is a validated dataset in canonical numeric form. Features holds one
// slice per input row, columns ordered per FeatureColumns. Raw retains the
// original cells (including any extra columns) for the tabular export.
// Labels is nil when the upload carried no usable ground-truth column.
type Batch struct {
	Features [][]float64
	Labels   []int
	Raw      *Dataset
}

func (b *Batch) Len() int { return len(b.Features) }

func (b *Batch) HasLabels() bool { return b.Labels != nil }

// ScoreSet carries one fraud score per batch row, in row order. Degenerate is
// set when the wrapped model exposed only hard labels, so scores are all
// 0.0/1.0 and probability-derived statistics are unreliable.
type ScoreSet struct {
	Values     []float64
	Degenerate bool
}
