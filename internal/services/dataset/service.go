package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"fraudshield/internal/models"
)

// Config bounds accepted uploads. Zero values fall back to defaults.
type Config struct {
	MaxRows          int
	MaxFileSizeBytes int64
}

const (
	DefaultMaxRows          = 100_000
	DefaultMaxFileSizeBytes = 200 << 20

	// Reporting every bad cell in a large upload would drown the caller,
	// so value-level diagnostics are capped.
	maxValueProblems = 20
)

// Service parses and validates uploaded transaction datasets.
type Service interface {
	// Parse reads a CSV document into a Dataset without validating it.
	Parse(r io.Reader) (*models.Dataset, error)

	// Validate checks the dataset against the required column contract and
	// returns the batch coerced to canonical numeric form. On failure the
	// returned error is a *ValidationError listing all problems found.
	Validate(ds *models.Dataset) (*models.Batch, error)

	// Load is Parse followed by Validate.
	Load(r io.Reader) (*models.Batch, error)
}

type service struct {
	config Config
}

// NewService creates a dataset service with the given bounds.
func NewService(cfg Config) Service {
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultMaxRows
	}
	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = DefaultMaxFileSizeBytes
	}
	return &service{config: cfg}
}

func (s *service) Parse(r io.Reader) (*models.Dataset, error) {
	limited := &io.LimitedReader{R: r, N: s.config.MaxFileSizeBytes + 1}

	reader := csv.NewReader(limited)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("failed to read CSV: %v", err))
	}
	if limited.N <= 0 {
		return nil, newValidationError(fmt.Sprintf(
			"file exceeds the maximum size of %d bytes", s.config.MaxFileSizeBytes))
	}
	if len(records) == 0 {
		return nil, newValidationError("dataset is empty")
	}

	return &models.Dataset{Header: records[0], Rows: records[1:]}, nil
}

func (s *service) Validate(ds *models.Dataset) (*models.Batch, error) {
	var problems []string

	colIndex := make(map[string]int, len(ds.Header))
	for i, name := range ds.Header {
		colIndex[name] = i
	}

	required := models.FeatureColumns()
	missing := false
	for _, name := range required {
		if _, ok := colIndex[name]; !ok {
			problems = append(problems, fmt.Sprintf("missing required column %s", name))
			missing = true
		}
	}

	if len(ds.Rows) == 0 {
		problems = append(problems, "dataset has no rows")
	}
	if len(ds.Rows) > s.config.MaxRows {
		problems = append(problems, fmt.Sprintf(
			"dataset has %d rows, exceeding the limit of %d", len(ds.Rows), s.config.MaxRows))
	}

	features := make([][]float64, 0, len(ds.Rows))
	valueProblems := 0
	if !missing && len(ds.Rows) > 0 && len(ds.Rows) <= s.config.MaxRows {
		for rowIdx, row := range ds.Rows {
			vals := make([]float64, len(required))
			for i, name := range required {
				ci := colIndex[name]
				if ci >= len(row) {
					valueProblems++
					if valueProblems <= maxValueProblems {
						problems = append(problems, fmt.Sprintf(
							"row %d is missing a value for column %s", rowIdx+1, name))
					}
					continue
				}
				v, err := strconv.ParseFloat(row[ci], 64)
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					valueProblems++
					if valueProblems <= maxValueProblems {
						problems = append(problems, fmt.Sprintf(
							"non-numeric value %q in column %s, row %d", row[ci], name, rowIdx+1))
					}
					continue
				}
				vals[i] = v
			}
			features = append(features, vals)
		}
		if valueProblems > maxValueProblems {
			problems = append(problems, fmt.Sprintf(
				"%d further value problems not listed", valueProblems-maxValueProblems))
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	return &models.Batch{
		Features: features,
		Labels:   parseLabels(ds, colIndex),
		Raw:      ds,
	}, nil
}

func (s *service) Load(r io.Reader) (*models.Batch, error) {
	ds, err := s.Parse(r)
	if err != nil {
		return nil, err
	}
	return s.Validate(ds)
}

// parseLabels extracts the optional ground-truth column. Any value that is
// not a clean 0/1 drops the whole column: the batch is then scored without
// evaluation rather than rejected.
func parseLabels(ds *models.Dataset, colIndex map[string]int) []int {
	ci, ok := colIndex[models.LabelColumn]
	if !ok {
		return nil
	}
	labels := make([]int, len(ds.Rows))
	for i, row := range ds.Rows {
		if ci >= len(row) {
			return nil
		}
		v, err := strconv.ParseFloat(row[ci], 64)
		if err != nil || (v != 0 && v != 1) {
			return nil
		}
		labels[i] = int(v)
	}
	return labels
}
