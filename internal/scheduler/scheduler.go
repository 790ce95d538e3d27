package scheduler

import (
	"context"
	"log/slog"
	"time"

	"post_archiver/internal/domain"
)

// Archiver defines the interface for one full crawl of the configured feed.
type Archiver interface {
	Ingest(ctx context.Context, sessionKey string) (*domain.IngestStats, error)
}

// Scheduler re-runs the crawl on an interval. Repeat runs are cheap when the
// upstream is unchanged: existence checks short-circuit every known post.
type Scheduler struct {
	archiver   Archiver
	sessionKey string
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(archiver Archiver, sessionKey string, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		archiver:   archiver,
		sessionKey: sessionKey,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runIngest(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runIngest(ctx)
		}
	}
}

func (s *Scheduler) runIngest(ctx context.Context) {
	if _, err := s.archiver.Ingest(ctx, s.sessionKey); err != nil {
		s.logger.Error("ingest failed", "error", err)
	}
}
