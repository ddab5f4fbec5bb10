package event

import (
	"list-sync/domain"
	"time"
)

type Type string

const (
	TodoCreated       Type = "todo:created"
	TodoUpdated       Type = "todo:updated"
	TodoDeleted       Type = "todo:deleted"
	ListUpdated       Type = "list:updated"
	ListDeleted       Type = "list:deleted"
	MemberAdded       Type = "member:added"
	MemberRemoved     Type = "member:removed"
	MemberRoleChanged Type = "member:role_changed"
	Ping              Type = "ping"
	Connected         Type = "connected"
)

// IsDeletion reports whether the event announces the removal of a resource.
// Only deletion events may carry a membership snapshot.
func (t Type) IsDeletion() bool {
	return t == TodoDeleted || t == ListDeleted
}

// Event is an immutable fact delivered to connected clients.
// It only lives for the duration of one fan-out.
type Event struct {
	Type    Type
	ListID  domain.ListID
	Data    any
	ActorID domain.UserID
	// Target is the member an event is about (member:* events only).
	Target    domain.UserID
	Timestamp time.Time
}

// MembershipChange is one of member:added, member:removed or member:role_changed.
type MembershipChange struct {
	Kind   Type
	Member domain.Member
}

func NewPing(at time.Time) Event {
	return Event{Type: Ping, ListID: domain.GlobalListID, Timestamp: at}
}

func NewConnected(connectionID string, at time.Time) Event {
	return Event{
		Type:      Connected,
		ListID:    domain.GlobalListID,
		Data:      ConnectedPayload{ConnectionID: connectionID},
		Timestamp: at,
	}
}
