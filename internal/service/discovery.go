package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/raffopenssh/inspire-austria/internal/config"
	"github.com/raffopenssh/inspire-austria/internal/domain"
	"github.com/raffopenssh/inspire-austria/internal/inspect"
)

// DiscoveryService runs schema discovery batches: it selects due service
// endpoints, probes them on a bounded worker pool and persists each result
// atomically. A failing endpoint never aborts the batch; losing the
// persistence store does.
type DiscoveryService struct {
	datasets  DatasetStore
	schemas   SchemaStore
	statuses  StatusStore
	inspector Inspector
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.DiscoveryConfig
}

func NewDiscoveryService(
	datasets DatasetStore,
	schemas SchemaStore,
	statuses StatusStore,
	inspector Inspector,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.DiscoveryConfig,
) *DiscoveryService {
	return &DiscoveryService{
		datasets:  datasets,
		schemas:   schemas,
		statuses:  statuses,
		inspector: inspector,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "discovery"),
		config:    cfg,
	}
}

// Run executes one discovery batch and reports its stats.
func (s *DiscoveryService) Run(ctx context.Context) (*domain.DiscoveryStats, error) {
	types := make([]domain.ServiceType, 0, len(s.config.ServiceTypes))
	for _, t := range s.config.ServiceTypes {
		types = append(types, domain.ServiceType(t))
	}

	targets, err := s.statuses.DueForInspection(ctx, types, s.config.Freshness, s.config.BatchLimit)
	if err != nil {
		return nil, fmt.Errorf("select targets: %w", err)
	}

	targets = dedupeByURL(targets)
	s.logger.Info("starting discovery batch",
		"targets", len(targets),
		"workers", s.config.Workers,
	)

	return s.runBatch(ctx, targets)
}

// InspectDataset probes every supported service of a single dataset,
// regardless of freshness.
func (s *DiscoveryService) InspectDataset(ctx context.Context, datasetID string) (*domain.DiscoveryStats, error) {
	ds, err := s.datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	var targets []domain.InspectionTarget
	for _, svc := range ds.Services {
		if svc.ServiceType != domain.ServiceWFS && svc.ServiceType != domain.ServiceOGCAPI {
			continue
		}
		targets = append(targets, domain.InspectionTarget{
			ServiceID:   svc.ID,
			DatasetID:   ds.ID,
			URL:         svc.URL,
			ServiceType: svc.ServiceType,
			Title:       ds.Title,
		})
	}
	targets = dedupeByURL(targets)

	s.logger.Info("inspecting dataset", "dataset", datasetID, "targets", len(targets))
	return s.runBatch(ctx, targets)
}

func (s *DiscoveryService) runBatch(ctx context.Context, targets []domain.InspectionTarget) (*domain.DiscoveryStats, error) {
	startTime := time.Now()
	stats := &domain.DiscoveryStats{Selected: len(targets)}

	if len(targets) == 0 {
		stats.Duration = time.Since(startTime)
		return stats, nil
	}

	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}

	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan domain.InspectionTarget)
	results := make(chan *inspect.Result)
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.worker(batchCtx, jobs, results); err != nil {
				select {
				case errCh <- err:
				default:
				}
				cancel()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, t := range targets {
			select {
			case jobs <- t:
			case <-batchCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		switch res.Status {
		case domain.StatusWorking:
			stats.Success++
		case domain.StatusTimeout:
			stats.Timeout++
		default:
			stats.Failed++
		}
	}

	select {
	case err := <-errCh:
		return nil, fmt.Errorf("batch aborted: %w", err)
	default:
	}

	stats.Duration = time.Since(startTime)
	s.logger.Info("discovery batch completed",
		"selected", stats.Selected,
		"success", stats.Success,
		"failed", stats.Failed,
		"timeout", stats.Timeout,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (s *DiscoveryService) worker(ctx context.Context, jobs <-chan domain.InspectionTarget, results chan<- *inspect.Result) error {
	for target := range jobs {
		res := s.inspector.Inspect(ctx, target)

		// Failed probes are recorded and the batch moves on; a store
		// failure is the one fatal condition and aborts it.
		if err := s.persist(ctx, res); err != nil {
			s.logger.Error("persist inspection result failed",
				"url", target.URL, "error", err)
			return fmt.Errorf("persist %s: %w", target.URL, err)
		}

		if s.publisher != nil {
			if err := s.publisher.PublishStatus(ctx, res.ServiceStatus()); err != nil {
				s.logger.Warn("publish status failed", "url", target.URL, "error", err)
			}
		}

		select {
		case results <- res:
		case <-ctx.Done():
			return nil
		}

		// Be polite to the provincial servers between probes.
		select {
		case <-time.After(s.config.Politeness):
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// persist writes the schema and status of one inspection atomically, so a
// working status never appears without its feature types.
func (s *DiscoveryService) persist(ctx context.Context, res *inspect.Result) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range res.FeatureTypes {
			if err := s.schemas.SaveFeatureType(txCtx, &res.FeatureTypes[i]); err != nil {
				return fmt.Errorf("save feature type: %w", err)
			}
		}
		if err := s.statuses.RecordAttempt(txCtx, res.ServiceStatus()); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
		return nil
	})
}

// dedupeByURL keeps the first target per URL, preserving selection order.
func dedupeByURL(targets []domain.InspectionTarget) []domain.InspectionTarget {
	seen := make(map[string]bool, len(targets))
	deduped := targets[:0:0]
	for _, t := range targets {
		if seen[t.URL] {
			continue
		}
		seen[t.URL] = true
		deduped = append(deduped, t)
	}
	return deduped
}
