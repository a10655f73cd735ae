package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/raffopenssh/inspire-austria/internal/config"
	"github.com/raffopenssh/inspire-austria/internal/domain"
	"github.com/raffopenssh/inspire-austria/internal/fetch"
	"github.com/raffopenssh/inspire-austria/internal/inspect"
	"github.com/raffopenssh/inspire-austria/internal/publisher"
	"github.com/raffopenssh/inspire-austria/internal/scheduler"
	"github.com/raffopenssh/inspire-austria/internal/schema"
	"github.com/raffopenssh/inspire-austria/internal/service"
	"github.com/raffopenssh/inspire-austria/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	limit := flag.Int("limit", 0, "override batch limit")
	types := flag.String("types", "", "comma-separated service types to probe")
	skipHours := flag.Int("skip-hours", 0, "override freshness window in hours")
	datasetID := flag.String("dataset", "", "inspect a single dataset, ignoring freshness")
	report := flag.Bool("report", false, "print the field coverage report and exit")
	daemon := flag.Bool("daemon", false, "run discovery batches on a schedule")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	if *limit > 0 {
		cfg.Discovery.BatchLimit = *limit
	}
	if *types != "" {
		cfg.Discovery.ServiceTypes = strings.Split(*types, ",")
	}
	if *skipHours > 0 {
		cfg.Discovery.Freshness = time.Duration(*skipHours) * time.Hour
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	statusStore := postgres.NewStatusStore(db)
	schemaStore := postgres.NewSchemaStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *report {
		coverage, err := schemaStore.FieldCoverage(ctx)
		if err != nil {
			logger.Error("field coverage report failed", "error", err)
			os.Exit(1)
		}
		printCoverage(coverage)

		summary, err := statusStore.Summary(ctx)
		if err != nil {
			logger.Error("status summary failed", "error", err)
			os.Exit(1)
		}
		fmt.Println()
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(summary)
		return
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	client := fetch.NewClient(cfg.Fetch, logger)
	extractor := schema.NewExtractor(schema.NewInferencer())
	inspector := inspect.NewInspector(client, extractor, cfg.Fetch, logger)

	discovery := service.NewDiscoveryService(
		postgres.NewDatasetStore(db),
		schemaStore,
		statusStore,
		inspector,
		postgres.NewTransactionManager(db),
		pub,
		logger,
		cfg.Discovery,
	)

	switch {
	case *datasetID != "":
		if _, err := discovery.InspectDataset(ctx, *datasetID); err != nil {
			logger.Error("dataset inspection failed", "dataset", *datasetID, "error", err)
			os.Exit(1)
		}
	case *daemon:
		sched := scheduler.NewScheduler(discovery, cfg.Discovery.Interval, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
	default:
		if _, err := discovery.Run(ctx); err != nil {
			logger.Error("discovery batch failed", "error", err)
			os.Exit(1)
		}
	}
}

// printCoverage lists field variations per theme, feature type and province,
// so cross-province naming differences stand out side by side.
func printCoverage(rows []domain.FieldCoverage) {
	theme, typeName := "", ""
	for _, row := range rows {
		if row.Theme != theme {
			fmt.Printf("\n=== %s ===\n", row.Theme)
			theme, typeName = row.Theme, ""
		}
		if row.TypeName != typeName {
			fmt.Printf("  %s:\n", row.TypeName)
			typeName = row.TypeName
		}

		province := row.Province
		if province == "" {
			province = "National"
		}
		fields := row.Fields
		suffix := ""
		if len(fields) > 10 {
			fields = fields[:10]
			suffix = "..."
		}
		fmt.Printf("    %s: %s%s\n", province, strings.Join(fields, ", "), suffix)
	}
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
