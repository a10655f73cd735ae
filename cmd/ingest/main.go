package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
	"github.com/raffopenssh/inspire-austria/internal/config"
	"github.com/raffopenssh/inspire-austria/internal/service"
	"github.com/raffopenssh/inspire-austria/internal/source/filedump"
	"github.com/raffopenssh/inspire-austria/internal/source/geonetwork"
	"github.com/raffopenssh/inspire-austria/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dumpPath := flag.String("file", "", "ingest from a local catalog dump instead of the live API")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	datasetStore := postgres.NewDatasetStore(db)
	txManager := postgres.NewTransactionManager(db)

	var source service.CatalogSource
	if *dumpPath != "" {
		source = filedump.New(*dumpPath)
	} else {
		source = geonetwork.New(cfg.Catalog, logger)
	}

	ingest := service.NewIngestService(
		source,
		datasetStore,
		catalog.NewClassifier(),
		txManager,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	stats, err := ingest.Run(ctx)
	if err != nil {
		logger.Error("ingest failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingest finished",
		"fetched", stats.Fetched,
		"stored", stats.Stored,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
