// Package main is the command-line batch scorer: it runs the risk analysis
// pipeline over a local CSV file and writes the scored export to disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"fraudshield/internal/config"
	"fraudshield/internal/ml"
	"fraudshield/internal/services/analysis"
	"fraudshield/internal/services/dataset"
	"fraudshield/internal/services/report"
	"fraudshield/internal/services/risk"
	"fraudshield/internal/services/scoring"
	"fraudshield/internal/services/stats"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	input := flag.String("input", "", "CSV file to score (required)")
	modelPaths := flag.String("model", "models/logistic_regression.json,models/decision_stump.json",
		"comma-separated model file candidates, first usable wins")
	output := flag.String("output", "", "path for the scored CSV (default: timestamped name in the working directory)")
	evaluate := flag.Bool("evaluate", true, "use the ground-truth Class column when present")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	config.LoadEnv()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	paths := strings.Split(*modelPaths, ",")
	for i := range paths {
		paths[i] = strings.TrimSpace(paths[i])
	}
	model, path, err := ml.LoadWithFallback(paths)
	if err != nil {
		log.Fatal().Strs("paths", paths).Msg("no usable model file")
	}
	adapter, err := scoring.NewAdapter(model)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("model is unusable")
	}

	classifier := risk.NewClassifier(risk.Config{
		LowThreshold:  config.GetFloatEnv("RISK_LOW_THRESHOLD", risk.DefaultLowThreshold),
		HighThreshold: config.GetFloatEnv("RISK_HIGH_THRESHOLD", risk.DefaultHighThreshold),
		BatchLowRate:  config.GetFloatEnv("RISK_BATCH_LOW_RATE", risk.DefaultBatchLowRate),
		BatchHighRate: config.GetFloatEnv("RISK_BATCH_HIGH_RATE", risk.DefaultBatchHighRate),
	})
	pipeline := analysis.NewService(
		dataset.NewService(dataset.Config{
			MaxRows:          config.GetIntEnv("MAX_ROWS", dataset.DefaultMaxRows),
			MaxFileSizeBytes: config.GetInt64Env("MAX_FILE_SIZE_BYTES", dataset.DefaultMaxFileSizeBytes),
		}),
		adapter,
		classifier,
		stats.NewAggregator(classifier),
		report.NewAssembler(nil),
		path,
	)

	file, err := os.Open(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("cannot open input")
	}
	defer file.Close()

	result, err := pipeline.Run(context.Background(), file, analysis.RunOptions{Evaluate: *evaluate})
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	dest := *output
	if dest == "" {
		dest = result.ExportFilename
	}
	if err := os.WriteFile(dest, result.ExportCSV, 0o644); err != nil {
		log.Fatal().Err(err).Str("output", dest).Msg("cannot write export")
	}

	fmt.Print(result.SummaryText)
	fmt.Printf("\nScored dataset written to %s\n", dest)
}
