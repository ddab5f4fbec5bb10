package runtime

import (
	"encoding/json"
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/sink"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

// fakeClock is advanced by hand.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func connect(t *testing.T, registry *Registry, owner domain.UserID, now func() time.Time) (*Connection, *sink.MemorySink) {
	t.Helper()
	memory := sink.NewMemorySink()
	conn := NewConnection(owner, memory, now)
	require.NoError(t, registry.Register(conn))
	return conn, memory
}

func envelopes(t *testing.T, memory *sink.MemorySink) []event.Envelope {
	t.Helper()
	var out []event.Envelope
	for _, frame := range memory.Frames() {
		var env event.Envelope
		require.NoError(t, json.Unmarshal(frame, &env))
		out = append(out, env)
	}
	return out
}
