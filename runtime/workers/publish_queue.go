package workers

import (
	"context"
	"fmt"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/errors"
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

type PublishJob struct {
	Event    event.Event
	Snapshot []domain.UserID
}

// PublishQueue is a bounded buffer between mutation handlers and the fan-out.
// Enqueue never blocks: when the buffer is full the event is dropped.
//
// The buffer is split into shards and every event of a list lands in the same
// shard, so a single worker publishes a list's events in enqueue order.
type PublishQueue struct {
	log    *slog.Logger
	shards []chan PublishJob
}

var _ contract.EventQueue = (*PublishQueue)(nil)

// NewPublishQueue spreads size slots over the given number of shards.
func NewPublishQueue(log *slog.Logger, size, shards int) *PublishQueue {
	shards = max(shards, 1)
	perShard := max((size+shards-1)/shards, 1)
	q := &PublishQueue{log: log, shards: make([]chan PublishJob, shards)}
	for i := range q.shards {
		q.shards[i] = make(chan PublishJob, perShard)
	}
	return q
}

func (q *PublishQueue) Enqueue(evt event.Event, snapshot []domain.UserID) error {
	select {
	case q.shards[q.ShardOf(evt.ListID)] <- PublishJob{Event: evt, Snapshot: snapshot}:
		return nil
	default:
		q.log.Warn("Publish queue full, dropping event", "type", evt.Type, "list_id", evt.ListID)
		return fmt.Errorf("%w: %s", errors.ErrPublishQueueFull, evt.Type)
	}
}

// ShardOf tells which shard carries the events of listID.
func (q *PublishQueue) ShardOf(listID domain.ListID) int {
	return int(xxhash.Sum64String(listID.String()) % uint64(len(q.shards)))
}

func (q *PublishQueue) Shards() int { return len(q.shards) }

func (q *PublishQueue) Len() int {
	n := 0
	for _, shard := range q.shards {
		n += len(shard)
	}
	return n
}

func (q *PublishQueue) Cap() int {
	n := 0
	for _, shard := range q.shards {
		n += cap(shard)
	}
	return n
}

var _ contract.Worker = PublishWorker{}

// PublishWorker drains one shard of the publish queue into the broadcaster.
//
// Delivery is fire-and-forget with no guarantees regarding retries or durability.
type PublishWorker struct {
	log       *slog.Logger
	jobs      <-chan PublishJob
	shard     int
	publisher contract.Publisher
}

func NewPublishWorker(log *slog.Logger, queue *PublishQueue, shard int, publisher contract.Publisher) PublishWorker {
	return PublishWorker{log: log, jobs: queue.shards[shard], shard: shard, publisher: publisher}
}

// NewPublishWorkers returns one worker per shard of queue.
func NewPublishWorkers(log *slog.Logger, queue *PublishQueue, publisher contract.Publisher) []contract.Worker {
	workers := make([]contract.Worker, queue.Shards())
	for i := range workers {
		workers[i] = NewPublishWorker(log, queue, i, publisher)
	}
	return workers
}

func (w PublishWorker) Run(ctx context.Context) error {
	for {
		select {
		case job := <-w.jobs:
			w.publisher.Publish(ctx, job.Event, job.Snapshot)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping publish worker", "shard", w.shard)
			return nil
		}
	}
}
