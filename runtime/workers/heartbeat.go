package workers

import (
	"context"
	"list-sync/contract"
	"list-sync/runtime"
	"log/slog"
	"time"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// HeartbeatWorker pings every push connection at a fixed interval.
// Connections whose ping fails are dropped by runtime.Liveness.
type HeartbeatWorker struct {
	log      *slog.Logger
	liveness *runtime.Liveness
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, liveness *runtime.Liveness, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, liveness: liveness, interval: interval}
}

// Run executes the main loop of the worker, sending a ping to all connections every interval.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping heartbeat")
			return nil
		case <-ticker.C:
			if dropped := w.liveness.Heartbeat(ctx); dropped > 0 {
				w.log.Info("Heartbeat dropped dead connections", "count", dropped)
			}
		}
	}
}
