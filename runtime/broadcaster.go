package runtime

import (
	"context"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/domain/event"
	"log/slog"
)

// Broadcaster delivers list-scoped events to the connections of entitled users.
//
// Publish is best effort: resolution and delivery errors are logged and never
// returned, so a failing fan-out cannot fail the mutation that triggered it.
// One broken connection is removed from the registry without aborting the others.
type Broadcaster struct {
	log      *slog.Logger
	registry *Registry
	resolver contract.AudienceResolver
}

func NewBroadcaster(log *slog.Logger, registry *Registry, resolver contract.AudienceResolver) *Broadcaster {
	return &Broadcaster{log: log, registry: registry, resolver: resolver}
}

// Publish resolves the audience of evt and writes it to every matching connection.
// The snapshot is only honoured for deletion events.
func (b *Broadcaster) Publish(ctx context.Context, evt event.Event, snapshot []domain.UserID) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("Publish panicked", "type", evt.Type, "list_id", evt.ListID, "panic", r)
		}
	}()

	if err := domain.ValidateListID(evt.ListID); err != nil {
		b.log.Warn("Dropping event with malformed list id", "type", evt.Type, "error", err)
		return
	}

	var override []domain.UserID
	if evt.Type.IsDeletion() {
		override = snapshot
	} else if snapshot != nil {
		b.log.Debug("Ignoring membership snapshot for non-deletion event", "type", evt.Type)
	}

	audience := b.resolver.Resolve(ctx, evt.ListID, override)
	if audience.Len() == 0 && evt.Type != event.MemberRemoved {
		b.log.Debug("Empty audience, nothing to deliver", "type", evt.Type, "list_id", evt.ListID)
		return
	}

	delivered, failed := 0, 0
	b.registry.ForEach(func(conn *Connection) {
		if !ShouldDeliver(evt, audience, conn.OwnerID) {
			return
		}
		if err := conn.Send(ctx, evt); err != nil {
			failed++
			b.log.Warn("Delivery failed, dropping connection",
				"connection_id", conn.ID,
				"user_id", conn.OwnerID,
				"type", evt.Type,
				"error", err)
			b.registry.Unregister(conn.ID)
			return
		}
		delivered++
	})

	b.log.Debug("Event fanned out",
		"type", evt.Type,
		"list_id", evt.ListID,
		"audience", audience.Len(),
		"delivered", delivered,
		"failed", failed)
}

// ShouldDeliver decides whether the connection owned by owner receives evt.
// The actor never gets an echo of their own action. A removed member is
// notified even though they left the audience.
func ShouldDeliver(evt event.Event, audience domain.Audience, owner domain.UserID) bool {
	if evt.ActorID != "" && owner == evt.ActorID {
		return false
	}
	if audience.Contains(owner) {
		return true
	}
	return evt.Type == event.MemberRemoved && evt.Target != "" && owner == evt.Target
}
