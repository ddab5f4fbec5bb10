//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=../mocks/mock_notifier.go -package=mocks
package services

import (
	"context"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/domain/event"
	"log/slog"
	"time"
)

// INotifier is called by mutation handlers once a change is committed.
// None of its methods can fail: publishing is detached from the caller.
type INotifier interface {
	NotifyTodoCreated(ctx context.Context, todo domain.TodoRecord, actorID domain.UserID)
	NotifyTodoUpdated(ctx context.Context, todo domain.TodoRecord, actorID domain.UserID)
	NotifyTodoDeleted(ctx context.Context, listID domain.ListID, todoID domain.TodoID, actorID domain.UserID)
	NotifyListUpdated(ctx context.Context, list domain.List, actorID domain.UserID)
	NotifyListDeleted(ctx context.Context, listID domain.ListID, snapshot []domain.UserID, actorID domain.UserID)
	NotifyMembershipChanged(ctx context.Context, change event.MembershipChange, actorID domain.UserID)
	NotifyMemberAdded(ctx context.Context, member domain.Member, actorID domain.UserID)
	NotifyMemberRemoved(ctx context.Context, member domain.Member, actorID domain.UserID)
	NotifyMemberRoleChanged(ctx context.Context, member domain.Member, actorID domain.UserID)
	GetActiveConnectionCount() int
}

type Notifier struct {
	log     *slog.Logger
	queue   contract.EventQueue
	todos   contract.TodoReader
	counter contract.ConnectionCounter
	now     func() time.Time
}

var _ INotifier = (*Notifier)(nil)

func NewNotifier(log *slog.Logger, queue contract.EventQueue, todos contract.TodoReader,
	counter contract.ConnectionCounter, now func() time.Time) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{log: log, queue: queue, todos: todos, counter: counter, now: now}
}

func (n *Notifier) NotifyTodoCreated(ctx context.Context, todo domain.TodoRecord, actorID domain.UserID) {
	n.enqueue(n.newEvent(event.TodoCreated, todo.ListID, event.FromTodo(n.expand(ctx, todo)), actorID), nil)
}

func (n *Notifier) NotifyTodoUpdated(ctx context.Context, todo domain.TodoRecord, actorID domain.UserID) {
	n.enqueue(n.newEvent(event.TodoUpdated, todo.ListID, event.FromTodo(n.expand(ctx, todo)), actorID), nil)
}

func (n *Notifier) NotifyTodoDeleted(_ context.Context, listID domain.ListID, todoID domain.TodoID, actorID domain.UserID) {
	n.enqueue(n.newEvent(event.TodoDeleted, listID, event.TodoDeletedPayload{TodoID: todoID.String()}, actorID), nil)
}

func (n *Notifier) NotifyListUpdated(_ context.Context, list domain.List, actorID domain.UserID) {
	n.enqueue(n.newEvent(event.ListUpdated, list.ID, event.FromList(list), actorID), nil)
}

// NotifyListDeleted must receive the member ids captured before the list was deleted:
// the list can no longer be queried for its members afterwards.
func (n *Notifier) NotifyListDeleted(_ context.Context, listID domain.ListID, snapshot []domain.UserID, actorID domain.UserID) {
	if snapshot == nil {
		n.log.Warn("List deletion published without membership snapshot", "list_id", listID)
	} else {
		snapshot = append(make([]domain.UserID, 0, len(snapshot)), snapshot...)
	}
	n.enqueue(n.newEvent(event.ListDeleted, listID, event.ListDeletedPayload{ListID: listID.String()}, actorID), snapshot)
}

func (n *Notifier) NotifyMembershipChanged(_ context.Context, change event.MembershipChange, actorID domain.UserID) {
	switch change.Kind {
	case event.MemberAdded, event.MemberRemoved, event.MemberRoleChanged:
	default:
		n.log.Error("Unknown membership change", "kind", change.Kind, "list_id", change.Member.ListID)
		return
	}
	evt := n.newEvent(change.Kind, change.Member.ListID, event.FromMember(change.Member), actorID)
	evt.Target = change.Member.UserID
	n.enqueue(evt, nil)
}

func (n *Notifier) NotifyMemberAdded(ctx context.Context, member domain.Member, actorID domain.UserID) {
	n.NotifyMembershipChanged(ctx, event.MembershipChange{Kind: event.MemberAdded, Member: member}, actorID)
}

func (n *Notifier) NotifyMemberRemoved(ctx context.Context, member domain.Member, actorID domain.UserID) {
	n.NotifyMembershipChanged(ctx, event.MembershipChange{Kind: event.MemberRemoved, Member: member}, actorID)
}

func (n *Notifier) NotifyMemberRoleChanged(ctx context.Context, member domain.Member, actorID domain.UserID) {
	n.NotifyMembershipChanged(ctx, event.MembershipChange{Kind: event.MemberRoleChanged, Member: member}, actorID)
}

func (n *Notifier) GetActiveConnectionCount() int {
	return n.counter.Count()
}

// expand loads the stored todo so that the author display name is part of the payload.
// When the lookup fails the event still goes out with the bare author id.
func (n *Notifier) expand(ctx context.Context, todo domain.TodoRecord) domain.Todo {
	full, err := n.todos.GetTodo(ctx, todo.ID)
	if err != nil {
		n.log.Warn("Todo enrichment failed, publishing partial todo", "todo_id", todo.ID, "error", err)
		return todo.Expand(domain.Author{ID: todo.Author.ID})
	}
	return full
}

func (n *Notifier) newEvent(t event.Type, listID domain.ListID, data any, actorID domain.UserID) event.Event {
	return event.Event{
		Type:      t,
		ListID:    listID,
		Data:      data,
		ActorID:   actorID,
		Timestamp: n.now().UTC(),
	}
}

// enqueue detaches the fan-out from the caller. A full queue is logged by the queue itself.
func (n *Notifier) enqueue(evt event.Event, snapshot []domain.UserID) {
	if err := n.queue.Enqueue(evt, snapshot); err != nil {
		n.log.Debug("Event not published", "type", evt.Type, "list_id", evt.ListID, "error", err)
	}
}
