package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Refresher reloads the board snapshot.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshWorker periodically reloads the snapshot so requests are served from a warm cache.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	logger    *zap.Logger
}

// NewRefreshWorker constructs the worker. A non-positive interval disables it.
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{refresher: refresher, interval: interval, logger: logger}
}

// Run refreshes once immediately and then on every tick until ctx is done.
func (w *RefreshWorker) Run(ctx context.Context) {
	if w == nil || w.refresher == nil || w.interval <= 0 {
		return
	}
	w.logger.Info("refresh worker started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	// Each refresh is bounded by the interval.
	refreshCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()
	if err := w.refresher.Refresh(refreshCtx); err != nil {
		w.logger.Warn("snapshot refresh failed", zap.Error(err))
	}
}

// Start runs the worker in a goroutine.
func Start(ctx context.Context, w *RefreshWorker) {
	go w.Run(ctx)
}
