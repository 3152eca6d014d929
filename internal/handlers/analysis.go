package handlers

import (
	"errors"
	"fmt"
	"time"

	apperrors "fraudshield/internal/errors"
	"fraudshield/internal/models"
	"fraudshield/internal/repositories"
	"fraudshield/internal/repositories/cache"
	"fraudshield/internal/services/analysis"
	"fraudshield/internal/services/dataset"
	"fraudshield/internal/services/scoring"
	"fraudshield/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultResultTTL is how long an export stays downloadable.
const DefaultResultTTL = time.Hour

type AnalysisHandler struct {
	pipeline  analysis.Service // nil when no model could be loaded
	results   cache.ResultStore
	history   repositories.AnalysisRepository // nil when history is disabled
	resultTTL time.Duration
}

func NewAnalysisHandler(pipeline analysis.Service, results cache.ResultStore, history repositories.AnalysisRepository) *AnalysisHandler {
	if results == nil {
		panic("result store is required")
	}
	return &AnalysisHandler{
		pipeline:  pipeline,
		results:   results,
		history:   history,
		resultTTL: DefaultResultTTL,
	}
}

// Analyze accepts a CSV upload, runs the risk analysis pipeline, stashes
// the export behind a one-time download token, and returns the batch
// statistics with the narrative summary.
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	if h.pipeline == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, apperrors.ErrModelUnavailable.Message)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, apperrors.ErrNoFile.Message)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.ServerError(c, "failed to read upload")
	}
	defer file.Close()

	opts := analysis.RunOptions{Evaluate: c.QueryBool("evaluate", true)}
	result, err := h.pipeline.Run(c.Context(), file, opts)
	if err != nil {
		return h.analysisError(c, err)
	}

	token := uuid.NewString()
	stored := cache.StoredResult{Filename: result.ExportFilename, CSV: result.ExportCSV}
	if err := h.results.Put(c.Context(), token, stored, h.resultTTL); err != nil {
		log.Warn().Err(err).Msg("failed to store export, download unavailable")
		token = ""
	}

	h.recordHistory(result, opts.Evaluate)

	return response.Success(c, "analysis complete", fiber.Map{
		"row_count":      result.Batch.Len(),
		"statistics":     result.Statistics,
		"summary":        result.Summary,
		"summary_text":   result.SummaryText,
		"download_token": token,
	})
}

func (h *AnalysisHandler) analysisError(c *fiber.Ctx, err error) error {
	var validationErr *dataset.ValidationError
	var mismatchErr *scoring.ModelMismatchError
	switch {
	case errors.As(err, &validationErr):
		return response.ValidationFailed(c, validationErr.Problems)
	case errors.As(err, &mismatchErr):
		log.Error().Err(err).Msg("model and dataset shape disagree")
		return response.ServerError(c, mismatchErr.Error())
	default:
		log.Error().Err(err).Msg("analysis failed")
		return response.ServerError(c, "analysis failed")
	}
}

func (h *AnalysisHandler) recordHistory(result *analysis.Result, evaluated bool) {
	if h.history == nil {
		return
	}
	record := &models.Analysis{
		ModelName:       result.Summary.ModelName,
		TotalCount:      result.Statistics.TotalCount,
		LegitimateCount: result.Statistics.LegitimateCount,
		FraudCount:      result.Statistics.FraudCount,
		FraudRate:       result.Statistics.FraudRate,
		RiskTier:        result.Statistics.RiskTier.String(),
		Metadata: models.JSON{
			"degenerate_scores": result.Scores.Degenerate,
			"evaluated":         evaluated && result.Batch.HasLabels(),
		},
	}
	if err := h.history.Create(record); err != nil {
		log.Warn().Err(err).Msg("failed to record analysis history")
	}
}

// Download streams a stored export exactly once; a second request for the
// same token gets 410 Gone.
func (h *AnalysisHandler) Download(c *fiber.Ctx) error {
	token := c.Params("token")
	stored, ok, err := h.results.Take(c.Context(), token)
	if err != nil {
		log.Error().Err(err).Msg("result store lookup failed")
		return response.ServerError(c, "failed to fetch export")
	}
	if !ok {
		return response.Error(c, fiber.StatusGone, apperrors.ErrResultExpired.Message)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", stored.Filename))
	return c.Send(stored.CSV)
}

// History lists recent analysis runs, newest first.
func (h *AnalysisHandler) History(c *fiber.Ctx) error {
	if h.history == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "history is not enabled")
	}
	analyses, err := h.history.List(c.QueryInt("limit", 20))
	if err != nil {
		log.Error().Err(err).Msg("failed to load analysis history")
		return response.ServerError(c, "failed to load history")
	}
	return response.Success(c, "history retrieved", analyses)
}
