package workers

import (
	"context"
	"list-sync/contract"
	"log/slog"
	"time"
)

// Capacity is anything exposing the current length and capacity of a bounded buffer.
type Capacity interface {
	Len() int
	Cap() int
}

// QueueCapacityWorker periodically samples the publish queue and the number of open
// push channels. Reading len and cap of a channel is non-blocking, so sampling
// never interferes with the publish workers.
type QueueCapacityWorker struct {
	log              *slog.Logger
	queue            Capacity
	connections      contract.ConnectionCounter
	interval         time.Duration
	highWaterPercent int
}

func NewQueueCapacityWorker(log *slog.Logger, queue Capacity, connections contract.ConnectionCounter,
	interval time.Duration, highWaterPercent int) *QueueCapacityWorker {
	return &QueueCapacityWorker{
		log: log, queue: queue,
		connections:      connections,
		interval:         interval,
		highWaterPercent: highWaterPercent,
	}
}

func (w *QueueCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping queue sampling")
			return nil
		case <-ticker.C:
			w.Sample()
		}
	}
}

// Sample logs the queue fill level and reports whether it crossed the high-water mark.
func (w *QueueCapacityWorker) Sample() bool {
	length, capacity := w.queue.Len(), w.queue.Cap()
	if capacity == 0 {
		return false
	}
	percent := length * 100 / capacity
	attrs := []any{
		"length", length,
		"capacity", capacity,
		"percent", percent,
		"connections", w.connections.Count(),
	}
	if percent >= w.highWaterPercent {
		w.log.Warn("Publish queue above high-water mark", attrs...)
		return true
	}
	w.log.Debug("Publish queue sampled", attrs...)
	return false
}
