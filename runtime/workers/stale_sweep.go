package workers

import (
	"context"
	"list-sync/contract"
	"list-sync/runtime"
	"log/slog"
	"time"
)

var _ contract.Worker = (*StaleSweepWorker)(nil)

// StaleSweepWorker periodically evicts connections that stopped showing activity.
type StaleSweepWorker struct {
	log      *slog.Logger
	liveness *runtime.Liveness
	interval time.Duration
}

func NewStaleSweepWorker(log *slog.Logger, liveness *runtime.Liveness, interval time.Duration) *StaleSweepWorker {
	return &StaleSweepWorker{log: log, liveness: liveness, interval: interval}
}

func (w *StaleSweepWorker) Run(ctx context.Context) error {
	w.log.Info("Starting stale sweep worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping stale sweep")
			return nil
		case <-ticker.C:
			if evicted := w.liveness.Sweep(w.liveness.Now()); evicted > 0 {
				w.log.Info("Stale connections evicted", "count", evicted)
			}
		}
	}
}
