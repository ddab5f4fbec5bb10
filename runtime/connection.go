package runtime

import (
	"context"
	"fmt"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Connection is one open push channel owned by an authenticated user.
// Writes to the same connection are serialized, so message order is preserved per client.
type Connection struct {
	ID      string
	OwnerID domain.UserID

	mu           sync.Mutex
	sink         contract.Sink
	lastLiveness time.Time
	now          func() time.Time
	closeOnce    sync.Once
	closeErr     error
}

func NewConnection(ownerID domain.UserID, sink contract.Sink, now func() time.Time) *Connection {
	if now == nil {
		now = time.Now
	}
	return &Connection{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		sink:         sink,
		lastLiveness: now(),
		now:          now,
	}
}

// Send encodes the event and writes it to the sink.
// A successful write refreshes the liveness timestamp.
// A panicking sink is reported as a write failure.
func (c *Connection) Send(ctx context.Context, evt event.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: sink write panicked: %v", errors.ErrSinkClosed, r)
		}
	}()

	frame, err := event.Encode(evt)
	if err != nil {
		return fmt.Errorf("encode %s: %w", evt.Type, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.sink.Write(ctx, frame); err != nil {
		return err
	}
	c.lastLiveness = c.now()
	return nil
}

func (c *Connection) LastLiveness() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastLiveness
}

// Close closes the sink exactly once. Later calls return the first result.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.sink.Close()
	})
	return c.closeErr
}
