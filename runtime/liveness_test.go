package runtime

import (
	"context"
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/errors"
	"list-sync/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const staleness = 5 * time.Minute

func TestLiveness_Sweep_Evicts_Stale_Connection(t *testing.T) {
	req := require.New(t)
	clock := &fakeClock{now: t0}
	registry := NewRegistry(testLogger())
	liveness := NewLiveness(testLogger(), registry, staleness, clock.Now)

	// Given a connection registered, then 5 minutes and 1 second without liveness update
	_, memory := connect(t, registry, "alice", clock.Now)
	before := registry.Count()
	clock.Advance(staleness + time.Second)

	// When the sweep runs
	evicted := liveness.Sweep(liveness.Now())

	// Then
	req.Equal(1, evicted)
	req.Equal(before-1, registry.Count())
	req.Equal(1, memory.CloseCount())
}

func TestLiveness_Sweep_Keeps_Fresh_Connection(t *testing.T) {
	req := require.New(t)
	clock := &fakeClock{now: t0}
	registry := NewRegistry(testLogger())
	liveness := NewLiveness(testLogger(), registry, staleness, clock.Now)

	// Given a connection exactly at the threshold
	connect(t, registry, "alice", clock.Now)
	clock.Advance(staleness)

	// When
	evicted := liveness.Sweep(clock.Now())

	// Then
	req.Equal(0, evicted)
	req.Equal(1, registry.Count())
}

func TestLiveness_Successful_Write_Refreshes_Liveness(t *testing.T) {
	req := require.New(t)
	clock := &fakeClock{now: t0}
	registry := NewRegistry(testLogger())
	liveness := NewLiveness(testLogger(), registry, staleness, clock.Now)
	conn, _ := connect(t, registry, "alice", clock.Now)

	// Given a heartbeat went through 4 minutes after registration
	clock.Advance(4 * time.Minute)
	req.Equal(0, liveness.Heartbeat(context.Background()))
	req.Equal(clock.Now(), conn.LastLiveness())

	// When the sweep runs 2 minutes later
	clock.Advance(2 * time.Minute)
	evicted := liveness.Sweep(clock.Now())

	// Then the connection survives
	req.Equal(0, evicted)
	req.Equal(1, registry.Count())
}

func TestLiveness_Heartbeat_Pings_Everyone_And_Drops_Failures(t *testing.T) {
	req := require.New(t)
	clock := &fakeClock{now: t0}
	registry := NewRegistry(testLogger())
	liveness := NewLiveness(testLogger(), registry, staleness, clock.Now)

	// Given two healthy connections of unrelated users and a broken one
	_, aliceSink := connect(t, registry, "alice", clock.Now)
	_, bobSink := connect(t, registry, "bob", clock.Now)
	_, brokenSink := connect(t, registry, "carol", clock.Now)
	brokenSink.Fail = errors.ErrSinkClosed

	// When
	dropped := liveness.Heartbeat(context.Background())

	// Then
	req.Equal(1, dropped)
	req.Equal(2, registry.Count())
	for _, frame := range [][]byte{aliceSink.Frames()[0], bobSink.Frames()[0]} {
		req.Contains(string(frame), `"type":"ping"`)
		req.Contains(string(frame), `"listId":"global"`)
	}
}

func TestLiveness_Heartbeat_Survives_Panicking_Sink(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	clock := &fakeClock{now: t0}
	registry := NewRegistry(testLogger())
	liveness := NewLiveness(testLogger(), registry, staleness, clock.Now)

	// Given a healthy connection and one whose sink panics on write
	_, aliceSink := connect(t, registry, "alice", clock.Now)
	panicking := mocks.NewMockSink(ctrl)
	panicking.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []byte) error {
		panic("stream torn down")
	})
	panicking.EXPECT().Close().Return(nil)
	req.NoError(registry.Register(NewConnection("dave", panicking, clock.Now)))

	// When
	var dropped int
	req.NotPanics(func() { dropped = liveness.Heartbeat(context.Background()) })

	// Then the panicking connection is dropped and the other one still pinged
	req.Equal(1, dropped)
	req.Equal(1, registry.Count())
	req.Len(aliceSink.Frames(), 1)
}

func TestLiveness_Evicted_Connection_Misses_Later_Broadcasts(t *testing.T) {
	req := require.New(t)
	clock := &fakeClock{now: t0}
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMembershipStore(ctrl)
	log := testLogger()
	registry := NewRegistry(log)
	liveness := NewLiveness(log, registry, staleness, clock.Now)
	broadcaster := NewBroadcaster(log, registry, NewAudienceResolver(log, store))
	listID := domain.NewListID()

	// Given an evicted connection
	_, memory := connect(t, registry, "bob", clock.Now)
	clock.Advance(staleness + time.Second)
	req.Equal(1, liveness.Sweep(clock.Now()))

	// When an event is published to its owner
	store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), listID).Return([]domain.UserID{"bob"}, nil)
	broadcaster.Publish(context.Background(), event.Event{Type: event.ListUpdated, ListID: listID, ActorID: "alice"}, nil)

	// Then
	req.Empty(memory.Frames())
}
