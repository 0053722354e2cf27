package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"mustplay-go/internal/config"
	"mustplay-go/internal/handler"
	"mustplay-go/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file path")
		dataDir    = flag.String("data", "", "Directory searched for dataset files (overrides config)")
	)
	flag.Parse()

	cfg, err := config.NewManager().Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if *dataDir != "" {
		cfg.Output.Dir = *dataDir
	}

	logger.SetLogger(logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	}))
	log := logger.GetLogger().WithField("component", "main")

	server := handler.NewServer(cfg.Server, cfg.Output)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("Shutdown failed")
		}
	}()

	if err := server.Listen(); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
	log.Info("Server stopped")
}
