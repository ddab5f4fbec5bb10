package workers

import (
	"context"
	"list-sync/runtime"
	"list-sync/sink"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatWorker_Pings_Until_Canceled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log)
	memory := sink.NewMemorySink()
	req.NoError(registry.Register(runtime.NewConnection("alice", memory, nil)))
	liveness := runtime.NewLiveness(log, registry, time.Minute, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// When
	err := NewHeartbeatWorker(log, liveness, 10*time.Millisecond).Run(ctx)

	// Then
	req.NoError(err)
	req.GreaterOrEqual(len(memory.Frames()), 2)
}

func TestStaleSweepWorker_Evicts_Stale_Connections(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log)

	// Given a connection created long ago, by the clock of the registry
	past := func() time.Time { return time.Now().Add(-time.Hour) }
	memory := sink.NewMemorySink()
	req.NoError(registry.Register(runtime.NewConnection("alice", memory, past)))
	liveness := runtime.NewLiveness(log, registry, time.Minute, time.Now)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// When
	err := NewStaleSweepWorker(log, liveness, 10*time.Millisecond).Run(ctx)

	// Then
	req.NoError(err)
	req.Equal(0, registry.Count())
	req.Equal(1, memory.CloseCount())
}
