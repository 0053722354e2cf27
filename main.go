package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"mustplay-go/internal/config"
	"mustplay-go/pkg/dataset"
	"mustplay-go/pkg/fetch"
	"mustplay-go/pkg/logger"
	"mustplay-go/pkg/scrape"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloatOrDefault returns environment variable as float or default
func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func main() {
	defaults := config.Default()

	var (
		startPage   = flag.Int("start", getEnvIntOrDefault("MUSTPLAY_START_PAGE", defaults.Scrape.StartPage), "First catalog page, inclusive (env: MUSTPLAY_START_PAGE)")
		endPage     = flag.Int("end", getEnvIntOrDefault("MUSTPLAY_END_PAGE", defaults.Scrape.EndPage), "Last catalog page, inclusive (env: MUSTPLAY_END_PAGE)")
		delay       = flag.Float64("delay", getEnvFloatOrDefault("MUSTPLAY_DELAY_SECONDS", defaults.Scrape.DelaySeconds), "Base delay between requests in seconds (env: MUSTPLAY_DELAY_SECONDS)")
		concurrency = flag.Int("concurrency", getEnvIntOrDefault("MUSTPLAY_CONCURRENCY", defaults.Scrape.Concurrency), "Concurrent page fetches (env: MUSTPLAY_CONCURRENCY)")
		output      = flag.String("output", getEnvOrDefault("MUSTPLAY_OUTPUT", ""), "Output CSV path, dated filename by default (env: MUSTPLAY_OUTPUT)")
		configPath  = flag.String("config", getEnvOrDefault("MUSTPLAY_CONFIG", ""), "Optional configuration file (env: MUSTPLAY_CONFIG)")
		debug       = flag.Bool("debug", os.Getenv("DEBUG") == "true", "Enable debug logging (env: DEBUG)")
	)
	flag.Parse()

	cfg, err := config.NewManager().Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Flags (and their env defaults) win over config file values when they
	// differ from the built-in defaults.
	if *startPage != defaults.Scrape.StartPage {
		cfg.Scrape.StartPage = *startPage
	}
	if *endPage != defaults.Scrape.EndPage {
		cfg.Scrape.EndPage = *endPage
	}
	if *delay != defaults.Scrape.DelaySeconds {
		cfg.Scrape.DelaySeconds = *delay
	}
	if *concurrency != defaults.Scrape.Concurrency {
		cfg.Scrape.Concurrency = *concurrency
	}
	cfg.Normalize()

	level := cfg.Logger.Level
	if *debug {
		level = "debug"
	}
	logger.SetLogger(logger.New(logger.Config{
		Level:      level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	}))
	log := logger.GetLogger().WithField("component", "main")

	outputPath := *output
	if outputPath == "" {
		outputPath = filepath.Join(cfg.Output.Dir, dataset.DefaultFileName(time.Now()))
	}

	start := time.Now()
	scraper := scrape.New(fetch.NewClient(), scrape.NewLogEvents())
	records, err := scraper.Run(context.Background(), scrape.Config{
		StartPage:    cfg.Scrape.StartPage,
		EndPage:      cfg.Scrape.EndPage,
		DelaySeconds: cfg.Scrape.DelaySeconds,
		Concurrency:  cfg.Scrape.Concurrency,
	})
	if err != nil {
		log.WithError(err).Fatal("Scrape failed")
	}

	if err := dataset.Write(outputPath, records); err != nil {
		log.WithError(err).Fatal("Failed to write dataset")
	}

	log.WithFields(map[string]interface{}{
		"total":   len(records),
		"output":  outputPath,
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}).Info("Dataset written")
}
