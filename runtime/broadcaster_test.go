package runtime

import (
	"context"
	"fmt"
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/errors"
	"list-sync/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type broadcastFixture struct {
	registry    *Registry
	store       *mocks.MockMembershipStore
	broadcaster *Broadcaster
}

func newBroadcastFixture(t *testing.T) broadcastFixture {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMembershipStore(ctrl)
	log := testLogger()
	registry := NewRegistry(log)
	return broadcastFixture{
		registry:    registry,
		store:       store,
		broadcaster: NewBroadcaster(log, registry, NewAudienceResolver(log, store)),
	}
}

func todoCreated(listID domain.ListID, actor domain.UserID) event.Event {
	return event.Event{
		Type:      event.TodoCreated,
		ListID:    listID,
		Data:      event.TodoPayload{ID: uuid.NewString(), Title: "Buy milk"},
		ActorID:   actor,
		Timestamp: t0,
	}
}

func TestBroadcaster_Delivers_To_Members_Except_Actor(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given A (owner) and B (editor) are members of L1, each with one connection
	_, aliceSink := connect(t, f.registry, "alice", nil)
	_, bobSink := connect(t, f.registry, "bob", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"alice", "bob"}, nil)

	// When A creates a todo in L1
	f.broadcaster.Publish(context.Background(), todoCreated(l1, "alice"), nil)

	// Then only B receives it
	req.Empty(aliceSink.Frames())
	received := envelopes(t, bobSink)
	req.Len(received, 1)
	req.Equal(string(event.TodoCreated), received[0].Type)
	req.Equal(l1.String(), received[0].ListID)
	req.Equal("alice", received[0].UserID)
}

func TestBroadcaster_Ignores_Users_Of_Other_Lists(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given C is only a member of L2, and many unrelated users are connected
	_, carolSink := connect(t, f.registry, "carol", nil)
	_, bobSink := connect(t, f.registry, "bob", nil)
	strangers := make([]*Connection, 0, 20)
	for i := 0; i < 20; i++ {
		conn, _ := connect(t, f.registry, domain.UserID(fmt.Sprintf("stranger-%d", i)), nil)
		strangers = append(strangers, conn)
	}
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"alice", "bob"}, nil)

	// When a todo is created in L1
	f.broadcaster.Publish(context.Background(), todoCreated(l1, "alice"), nil)

	// Then exactly the members of L1 are reached
	req.Empty(carolSink.Frames())
	req.Len(bobSink.Frames(), 1)
	req.Equal(2+len(strangers), f.registry.Count())
}

func TestBroadcaster_Never_Echoes_Actor_On_Any_Connection(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given the actor has two tabs open
	_, tab1 := connect(t, f.registry, "alice", nil)
	_, tab2 := connect(t, f.registry, "alice", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"alice"}, nil)

	// When
	f.broadcaster.Publish(context.Background(), todoCreated(l1, "alice"), nil)

	// Then
	req.Empty(tab1.Frames())
	req.Empty(tab2.Frames())
}

func TestBroadcaster_Removed_Member_Is_Notified(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given B was removed from L1 by A: the membership no longer contains B
	_, aliceSink := connect(t, f.registry, "alice", nil)
	_, bobSink := connect(t, f.registry, "bob", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"alice"}, nil)

	evt := event.Event{
		Type:      event.MemberRemoved,
		ListID:    l1,
		Data:      event.MemberPayload{UserID: "bob", Role: string(domain.RoleEditor)},
		ActorID:   "alice",
		Target:    "bob",
		Timestamp: t0,
	}

	// When
	f.broadcaster.Publish(context.Background(), evt, nil)

	// Then B still receives the removal, the remover does not
	req.Empty(aliceSink.Frames())
	received := envelopes(t, bobSink)
	req.Len(received, 1)
	req.Equal(string(event.MemberRemoved), received[0].Type)
	req.Equal(l1.String(), received[0].ListID)
}

func TestBroadcaster_Member_Leaving_Gets_No_Echo(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given B leaves L1 by itself
	_, aliceSink := connect(t, f.registry, "alice", nil)
	_, bobSink := connect(t, f.registry, "bob", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"alice"}, nil)

	evt := event.Event{Type: event.MemberRemoved, ListID: l1, ActorID: "bob", Target: "bob", Timestamp: t0}

	// When
	f.broadcaster.Publish(context.Background(), evt, nil)

	// Then the actor exclusion wins over the removed-member rule
	req.Empty(bobSink.Frames())
	req.Len(aliceSink.Frames(), 1)
}

func TestBroadcaster_Removed_Member_Of_Emptied_List_Is_Notified(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given nobody is left in the list after the removal
	_, bobSink := connect(t, f.registry, "bob", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{}, nil)

	evt := event.Event{Type: event.MemberRemoved, ListID: l1, ActorID: "alice", Target: "bob", Timestamp: t0}

	// When
	f.broadcaster.Publish(context.Background(), evt, nil)

	// Then
	req.Len(bobSink.Frames(), 1)
}

func TestBroadcaster_Deletion_Uses_Snapshot_Without_Querying(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l3 := domain.NewListID()

	// Given L3 had members A and D, and no longer exists
	_, aliceSink := connect(t, f.registry, "alice", nil)
	_, daveSink := connect(t, f.registry, "dave", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), gomock.Any()).Times(0)

	evt := event.Event{
		Type:      event.ListDeleted,
		ListID:    l3,
		Data:      event.ListDeletedPayload{ListID: l3.String()},
		ActorID:   "alice",
		Timestamp: t0,
	}

	// When A deletes L3 with the captured snapshot
	f.broadcaster.Publish(context.Background(), evt, []domain.UserID{"alice", "dave"})

	// Then D is notified from the snapshot alone
	req.Empty(aliceSink.Frames())
	received := envelopes(t, daveSink)
	req.Len(received, 1)
	req.Equal(string(event.ListDeleted), received[0].Type)
}

func TestBroadcaster_Snapshot_Ignored_For_Non_Deletion(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given a caller passes a snapshot with an update event
	_, eveSink := connect(t, f.registry, "eve", nil)
	_, bobSink := connect(t, f.registry, "bob", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"bob"}, nil)

	evt := event.Event{Type: event.ListUpdated, ListID: l1, ActorID: "alice", Timestamp: t0}

	// When
	f.broadcaster.Publish(context.Background(), evt, []domain.UserID{"eve"})

	// Then the current membership decides
	req.Empty(eveSink.Frames())
	req.Len(bobSink.Frames(), 1)
}

func TestBroadcaster_Failed_Connection_Does_Not_Stop_Others(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given three members connected, one of which has a broken stream
	_, bobSink := connect(t, f.registry, "bob", nil)
	_, carolSink := connect(t, f.registry, "carol", nil)
	_, brokenSink := connect(t, f.registry, "dave", nil)
	brokenSink.Fail = errors.ErrSinkClosed
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"bob", "carol", "dave"}, nil)

	// When
	f.broadcaster.Publish(context.Background(), todoCreated(l1, "alice"), nil)

	// Then the healthy connections got the event and the broken one is gone
	req.Len(bobSink.Frames(), 1)
	req.Len(carolSink.Frames(), 1)
	req.Equal(2, f.registry.Count())
	req.Equal(1, brokenSink.CloseCount())

	// And it does not receive later broadcasts
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"bob", "carol", "dave"}, nil)
	f.broadcaster.Publish(context.Background(), todoCreated(l1, "alice"), nil)
	req.Len(bobSink.Frames(), 2)
	req.Len(carolSink.Frames(), 2)
	req.Equal(1, brokenSink.CloseCount())
}

func TestBroadcaster_Panicking_Sink_Is_Isolated(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()
	ctrl := gomock.NewController(t)

	// Given one connection whose sink panics on write
	panicking := mocks.NewMockSink(ctrl)
	panicking.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []byte) error {
		panic("stream torn down")
	})
	panicking.EXPECT().Close().Return(nil)
	req.NoError(f.registry.Register(NewConnection("dave", panicking, nil)))
	_, bobSink := connect(t, f.registry, "bob", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return([]domain.UserID{"bob", "dave"}, nil)

	// When
	req.NotPanics(func() {
		f.broadcaster.Publish(context.Background(), todoCreated(l1, "alice"), nil)
	})

	// Then
	req.Len(bobSink.Frames(), 1)
	req.Equal(1, f.registry.Count())
}

func TestBroadcaster_Malformed_List_ID_Delivers_Nothing(t *testing.T) {
	for _, listID := range []domain.ListID{"", "not-a-uuid", domain.GlobalListID, "'; DROP TABLE lists; --"} {
		t.Run(string(listID), func(t *testing.T) {
			req := require.New(t)
			f := newBroadcastFixture(t)
			_, bobSink := connect(t, f.registry, "bob", nil)
			f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), gomock.Any()).Times(0)
			before := f.registry.Count()

			// When
			req.NotPanics(func() {
				f.broadcaster.Publish(context.Background(), todoCreated(listID, "alice"), nil)
			})

			// Then
			req.Empty(bobSink.Frames())
			req.Equal(before, f.registry.Count())
		})
	}
}

func TestBroadcaster_Unknown_List_Delivers_Nothing(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t)
	l1 := domain.NewListID()

	// Given the list vanished between the mutation and the fan-out
	_, bobSink := connect(t, f.registry, "bob", nil)
	f.store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), l1).Return(nil, errors.ErrListNotFound)

	// When
	f.broadcaster.Publish(context.Background(), todoCreated(l1, "alice"), nil)

	// Then
	req.Empty(bobSink.Frames())
	req.Equal(1, f.registry.Count())
}

func TestShouldDeliver(t *testing.T) {
	audience := domain.NewAudience([]domain.UserID{"alice", "bob"})
	removal := event.Event{Type: event.MemberRemoved, ActorID: "alice", Target: "carol"}
	update := event.Event{Type: event.TodoUpdated, ActorID: "alice"}

	cases := []struct {
		name  string
		evt   event.Event
		owner domain.UserID
		want  bool
	}{
		{name: "member", evt: update, owner: "bob", want: true},
		{name: "actor", evt: update, owner: "alice", want: false},
		{name: "outsider", evt: update, owner: "carol", want: false},
		{name: "removed member", evt: removal, owner: "carol", want: true},
		{name: "remover", evt: removal, owner: "alice", want: false},
		{name: "target of non removal", evt: event.Event{Type: event.MemberAdded, ActorID: "alice", Target: "dave"}, owner: "dave", want: false},
		{name: "system event", evt: event.Event{Type: event.ListUpdated}, owner: "bob", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ShouldDeliver(tc.evt, audience, tc.owner))
		})
	}
}
