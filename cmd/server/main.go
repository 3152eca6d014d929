// Package main is the entry point for the Fraud Shield API server.
// It loads the classifier, initializes storage, sets up the HTTP server,
// and starts the application.
package main

import (
	"errors"
	"os"
	"strings"
	"time"

	"fraudshield/internal/config"
	apperrors "fraudshield/internal/errors"
	"fraudshield/internal/ml"
	"fraudshield/internal/repositories"
	"fraudshield/internal/routes"
	"fraudshield/internal/services/dataset"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultModelPaths = "models/logistic_regression.json,models/decision_stump.json"

func main() {
	config.LoadEnv()
	setupLogging(config.GetEnv("LOG_LEVEL", "info"))

	// The model is optional at startup: without one the API still serves,
	// but the analyze endpoint degrades to 503 until a model file exists.
	model, modelPath := loadModel()

	if config.GetEnv("HISTORY_DISABLED", "false") != "true" {
		if err := repositories.InitDB(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		log.Info().Msg("connected to database")
	}
	repositories.InitResultStore()
	defer func() {
		if repositories.Results != nil {
			if err := repositories.Results.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close result store")
			}
		}
	}()

	maxUpload := config.GetInt64Env("MAX_FILE_SIZE_BYTES", dataset.DefaultMaxFileSizeBytes)
	app := fiber.New(fiber.Config{
		// Headroom over the dataset bound for multipart framing.
		BodyLimit:    int(maxUpload) + (1 << 20),
		ErrorHandler: errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, model, modelPath)

	port := config.GetEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting Fraud Shield API")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// setupLogging configures the logger.
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// loadModel tries the configured model paths in order and returns the first
// usable classifier.
func loadModel() (any, string) {
	paths := strings.Split(config.GetEnv("MODEL_PATHS", defaultModelPaths), ",")
	for i := range paths {
		paths[i] = strings.TrimSpace(paths[i])
	}

	model, path, err := ml.LoadWithFallback(paths)
	if err != nil {
		log.Warn().Strs("paths", paths).Msg("no trained model found, scoring disabled")
		return nil, ""
	}
	log.Info().Str("path", path).Msg("model loaded")
	return model, path
}

func errorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, fiber.ErrRequestEntityTooLarge) {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": apperrors.ErrFileTooLarge.Message,
		})
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	log.Error().Err(err).Msg("unhandled request error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
