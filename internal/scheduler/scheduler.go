package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// Discoverer defines the interface for discovery batches.
type Discoverer interface {
	Run(ctx context.Context) (*domain.DiscoveryStats, error)
}

type Scheduler struct {
	discoverer Discoverer
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(discoverer Discoverer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		discoverer: discoverer,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runBatch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runBatch(ctx)
		}
	}
}

func (s *Scheduler) runBatch(ctx context.Context) {
	batchCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	if _, err := s.discoverer.Run(batchCtx); err != nil {
		s.logger.Error("discovery batch failed", "error", err)
	}
}
