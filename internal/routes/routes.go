// Package routes defines the API routing configuration.
// It wires the pipeline services to their handlers and registers all HTTP
// routes.
package routes

import (
	"fraudshield/internal/config"
	"fraudshield/internal/handlers"
	"fraudshield/internal/repositories"
	"fraudshield/internal/services/analysis"
	"fraudshield/internal/services/dataset"
	"fraudshield/internal/services/report"
	"fraudshield/internal/services/risk"
	"fraudshield/internal/services/scoring"
	"fraudshield/internal/services/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SetupRoutes configures all application routes. The model is the opaque
// classifier loaded at startup; nil means scoring is unavailable and the
// analyze endpoint degrades to 503.
func SetupRoutes(app *fiber.App, model any, modelName string) {
	classifier := risk.NewClassifier(risk.Config{
		LowThreshold:  config.GetFloatEnv("RISK_LOW_THRESHOLD", risk.DefaultLowThreshold),
		HighThreshold: config.GetFloatEnv("RISK_HIGH_THRESHOLD", risk.DefaultHighThreshold),
		BatchLowRate:  config.GetFloatEnv("RISK_BATCH_LOW_RATE", risk.DefaultBatchLowRate),
		BatchHighRate: config.GetFloatEnv("RISK_BATCH_HIGH_RATE", risk.DefaultBatchHighRate),
	})
	datasets := dataset.NewService(dataset.Config{
		MaxRows:          config.GetIntEnv("MAX_ROWS", dataset.DefaultMaxRows),
		MaxFileSizeBytes: config.GetInt64Env("MAX_FILE_SIZE_BYTES", dataset.DefaultMaxFileSizeBytes),
	})

	var pipeline analysis.Service
	if model != nil {
		adapter, err := scoring.NewAdapter(model)
		if err != nil {
			log.Error().Err(err).Msg("loaded model is unusable, scoring disabled")
		} else {
			pipeline = analysis.NewService(
				datasets,
				adapter,
				classifier,
				stats.NewAggregator(classifier),
				report.NewAssembler(nil),
				modelName,
			)
		}
	}

	var history repositories.AnalysisRepository
	if repositories.DB != nil {
		history = repositories.NewAnalysisRepository(repositories.DB)
	}

	analysisHandler := handlers.NewAnalysisHandler(pipeline, repositories.Results, history)

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)
	api.Post("/analyze", analysisHandler.Analyze)
	api.Get("/download/:token", analysisHandler.Download)
	api.Get("/analyses", analysisHandler.History)
}
