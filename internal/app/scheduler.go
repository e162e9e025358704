package app

import (
	"context"
	"errors"
	"time"

	"github.com/sitewright/sitewright/internal/config"
	"github.com/sitewright/sitewright/internal/domain"
	"github.com/sitewright/sitewright/internal/utils"
)

// Scheduler decides when batch passes run. In build mode the tracking
// index is complete, so a single pass at the end of the build covers
// everything. In develop mode the session is long-lived and tracking data
// accumulates as queries run, so passes repeat on an interval; any entry a
// pass can't resolve yet is re-enqueued by the plugin on the next data
// change, not retried here.
type Scheduler struct {
	orch     *Orchestrator
	mode     string
	interval time.Duration
	logger   *utils.Logger
}

// NewScheduler creates a scheduler for the given orchestrator
func NewScheduler(orch *Orchestrator, cfg *config.Config) *Scheduler {
	return &Scheduler{
		orch:     orch,
		mode:     cfg.Build.Mode,
		interval: cfg.Build.Interval,
		logger:   orch.logger.WithComponent("scheduler"),
	}
}

// Run executes the scheduling policy until ctx is canceled. Build mode
// runs exactly one pass. Develop mode runs a pass per interval and a
// final pass on shutdown so nothing stays pending across the session end.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.mode == config.ModeBuild {
		_, err := s.orch.RunBatch(ctx)
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Session is shutting down; drain what's pending with a
			// fresh context so the final pass isn't itself canceled.
			flushCtx, cancel := context.WithTimeout(context.Background(), s.interval)
			_, err := s.orch.RunBatch(flushCtx)
			cancel()
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return ctx.Err()

		case <-ticker.C:
			if _, err := s.orch.RunBatch(ctx); err != nil {
				if errors.Is(err, domain.ErrInvalidMatchKind) {
					// Contract violation, not a data problem; halt.
					return err
				}
				s.logger.Error().Err(err).Msg("Batch pass failed; will retry on next interval")
			}
		}
	}
}
