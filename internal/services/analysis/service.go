package analysis

import (
	"context"
	"io"

	"fraudshield/internal/models"
	"fraudshield/internal/services/dataset"
	"fraudshield/internal/services/report"
	"fraudshield/internal/services/risk"
	"fraudshield/internal/services/scoring"
	"fraudshield/internal/services/stats"
)

// Service runs the full transaction risk analysis pipeline over one
// uploaded dataset: validate, score, classify, aggregate, assemble. Each
// stage fails fast; a partial result is never returned.
type Service interface {
	Run(ctx context.Context, r io.Reader, opts RunOptions) (*Result, error)
}

// RunOptions tunes a single pipeline run.
type RunOptions struct {
	// Evaluate requests evaluation mode: when the dataset carries
	// ground-truth labels, fraud counts and confusion counts are derived
	// from them instead of predicted tiers.
	Evaluate bool
}

// Result is everything one pipeline run produces.
type Result struct {
	Batch          *models.Batch
	Scores         models.ScoreSet
	Tiers          []models.RiskTier
	Statistics     *models.BatchStatistics
	Summary        models.Summary
	SummaryText    string
	ExportCSV      []byte
	ExportFilename string
}

type service struct {
	datasets   dataset.Service
	adapter    *scoring.Adapter
	classifier *risk.Classifier
	aggregator *stats.Aggregator
	assembler  *report.Assembler
	modelName  string
}

// NewService wires the pipeline stages together.
func NewService(
	datasets dataset.Service,
	adapter *scoring.Adapter,
	classifier *risk.Classifier,
	aggregator *stats.Aggregator,
	assembler *report.Assembler,
	modelName string,
) Service {
	if datasets == nil {
		panic("dataset service is required")
	}
	if adapter == nil {
		panic("scoring adapter is required")
	}
	if classifier == nil {
		panic("classifier is required")
	}
	if aggregator == nil {
		panic("aggregator is required")
	}
	if assembler == nil {
		panic("assembler is required")
	}
	return &service{
		datasets:   datasets,
		adapter:    adapter,
		classifier: classifier,
		aggregator: aggregator,
		assembler:  assembler,
		modelName:  modelName,
	}
}

func (s *service) Run(ctx context.Context, r io.Reader, opts RunOptions) (*Result, error) {
	batch, err := s.datasets.Load(r)
	if err != nil {
		return nil, err
	}

	scores, err := s.adapter.Score(batch)
	if err != nil {
		return nil, err
	}

	tiers := s.classifier.ClassifyAll(scores.Values)

	statistics, err := s.aggregator.Aggregate(batch, scores, tiers, opts.Evaluate)
	if err != nil {
		return nil, err
	}

	export, err := s.assembler.TabularExport(batch, scores, tiers)
	if err != nil {
		return nil, err
	}

	summary := s.assembler.Summary(statistics, s.modelName)

	return &Result{
		Batch:          batch,
		Scores:         scores,
		Tiers:          tiers,
		Statistics:     statistics,
		Summary:        summary,
		SummaryText:    s.assembler.NarrativeText(summary, scores.Degenerate),
		ExportCSV:      export,
		ExportFilename: s.assembler.ExportFilename(),
	}, nil
}
