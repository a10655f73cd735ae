package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
)

// IngestStats summarises one catalog ingest run.
type IngestStats struct {
	Fetched  int
	Stored   int
	Errors   int
	Duration time.Duration
}

// IngestService pulls the raw catalog, classifies every record and upserts
// the result. Re-running is idempotent: records are keyed by catalog id.
type IngestService struct {
	source     CatalogSource
	datasets   DatasetStore
	classifier *catalog.Classifier
	txManager  TransactionManager
	logger     *slog.Logger
}

func NewIngestService(
	source CatalogSource,
	datasets DatasetStore,
	classifier *catalog.Classifier,
	txManager TransactionManager,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		source:     source,
		datasets:   datasets,
		classifier: classifier,
		txManager:  txManager,
		logger:     logger.With("source", source.ID()),
	}
}

func (s *IngestService) Run(ctx context.Context) (*IngestStats, error) {
	startTime := time.Now()
	s.logger.Info("starting ingest", "source_name", s.source.Name())

	hits, err := s.source.FetchHits(ctx)
	if err != nil {
		if len(hits) == 0 {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		s.logger.Warn("catalog fetch incomplete, ingesting partial result",
			"records", len(hits), "error", err)
	}

	s.logger.Info("fetched catalog records", "count", len(hits))

	stats := &IngestStats{Fetched: len(hits)}
	now := time.Now()

	for _, hit := range hits {
		if hit.ID == "" {
			continue
		}
		ds := s.classifier.ProcessHit(hit, now)

		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.datasets.Upsert(txCtx, &ds)
		})
		if err != nil {
			s.logger.Warn("upsert failed", "dataset", ds.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Stored++
	}

	stats.Duration = time.Since(startTime)
	s.logger.Info("ingest completed",
		"stored", stats.Stored,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}
