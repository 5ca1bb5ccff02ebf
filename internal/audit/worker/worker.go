package worker

import (
	"context"
	"log/slog"
	"time"

	"coreid/internal/audit/models"
)

// Cleaner deletes expired audit log rows.
type Cleaner interface {
	Cleanup(ctx context.Context, retentionDays int) (*models.CleanupResult, error)
}

// Worker runs audit log retention on a fixed interval. A failed run is
// logged and retried on the next tick.
type Worker struct {
	cleaner       Cleaner
	interval      time.Duration
	retentionDays int
	logger        *slog.Logger
}

func New(cleaner Cleaner, interval time.Duration, retentionDays int, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{cleaner: cleaner, interval: interval, retentionDays: retentionDays, logger: logger}
}

// Run blocks until ctx is done. The first cleanup happens one interval
// after start.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single cleanup.
func (w *Worker) RunOnce(ctx context.Context) {
	res, err := w.cleaner.Cleanup(ctx, w.retentionDays)
	if err != nil {
		w.logger.ErrorContext(ctx, "audit retention run failed", "retention_days", w.retentionDays, "error", err)
		return
	}
	w.logger.InfoContext(ctx, "audit retention run finished", "message", res.Message)
}
