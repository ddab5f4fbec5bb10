package runtime

import (
	"context"
	"list-sync/domain/event"
	"log/slog"
	"time"
)

// Liveness detects dead push channels.
// Heartbeat pings every connection; Sweep evicts those idle longer than the staleness threshold.
// It only works on the registry and never looks at list membership.
type Liveness struct {
	log       *slog.Logger
	registry  *Registry
	staleness time.Duration
	now       func() time.Time
}

func NewLiveness(log *slog.Logger, registry *Registry, staleness time.Duration, now func() time.Time) *Liveness {
	if now == nil {
		now = time.Now
	}
	return &Liveness{log: log, registry: registry, staleness: staleness, now: now}
}

// Heartbeat sends a ping to every registered connection and unregisters the ones that fail.
// It returns the number of connections dropped.
func (l *Liveness) Heartbeat(ctx context.Context) int {
	ping := event.NewPing(l.now())
	dropped := 0
	l.registry.ForEach(func(conn *Connection) {
		if err := conn.Send(ctx, ping); err != nil {
			l.log.Debug("Heartbeat failed, dropping connection",
				"connection_id", conn.ID, "user_id", conn.OwnerID, "error", err)
			l.registry.Unregister(conn.ID)
			dropped++
		}
	})
	return dropped
}

// Sweep unregisters every connection whose last liveness is older than the threshold at now.
// It returns the number of connections evicted.
func (l *Liveness) Sweep(now time.Time) int {
	evicted := 0
	l.registry.ForEach(func(conn *Connection) {
		if now.Sub(conn.LastLiveness()) > l.staleness {
			l.log.Info("Evicting stale connection",
				"connection_id", conn.ID,
				"user_id", conn.OwnerID,
				"last_liveness", conn.LastLiveness())
			l.registry.Unregister(conn.ID)
			evicted++
		}
	})
	return evicted
}

// Now exposes the injected clock to the sweep worker.
func (l *Liveness) Now() time.Time { return l.now() }
