package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/plainsdata/licenseprep/internal/config"
	"github.com/plainsdata/licenseprep/internal/logging"
	"github.com/plainsdata/licenseprep/internal/prep"
	_ "github.com/plainsdata/licenseprep/internal/prep/states" // Register all states
	"github.com/plainsdata/licenseprep/internal/sink"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, runID := logging.NewRun(context.Background())
	logger := logging.FromContext(ctx)

	logger.Info("configuration loaded",
		"data_root", cfg.Data.Root,
		"states", cfg.Data.States,
		"output", cfg.Output.Path,
		"db_sink", cfg.Database.URL != "",
	)

	// Every configured state must have a registered transform; catching a
	// typo here beats failing halfway through the corpus build.
	for _, state := range cfg.Data.States {
		if _, ok := prep.Lookup(state); !ok {
			logger.Error("no transform registered for state",
				"state", state, "registered", prep.States())
			os.Exit(1)
		}
	}
	logger.Info("states registered", "count", prep.Count())

	start := time.Now()
	corpus, err := prep.BuildCorpus(ctx, cfg.Data.Root, cfg.Data.States)
	if err != nil {
		logger.Error("corpus build failed", "error", err)
		os.Exit(1)
	}
	logger.Info("corpus built", "rows", corpus.Len(), "duration", time.Since(start))

	if err := sink.WriteCSV(cfg.Output.Path, corpus); err != nil {
		logger.Error("failed to write corpus", "path", cfg.Output.Path, "error", err)
		os.Exit(1)
	}
	logger.Info("corpus written", "path", cfg.Output.Path)

	if cfg.Database.URL != "" {
		n, err := sink.LoadPostgres(ctx, cfg.Database.URL, cfg.Database.Table, corpus, runID)
		if err != nil {
			logger.Error("failed to load corpus into database", "table", cfg.Database.Table, "error", err)
			os.Exit(1)
		}
		logger.Info("corpus loaded into database", "table", cfg.Database.Table, "rows", n)
	}
}
