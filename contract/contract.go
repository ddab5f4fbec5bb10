//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"list-sync/domain"
	"list-sync/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Sink is the write-only end of a push channel.
// Write pushes one encoded record; Close releases the channel and may be called more than once.
type Sink interface {
	Write(ctx context.Context, frame []byte) error
	Close() error
}

// MembershipStore is exposed by the storage layer.
// It returns errors.ErrListNotFound when the list does not exist.
type MembershipStore interface {
	LoadCurrentMemberIDs(ctx context.Context, listID domain.ListID) ([]domain.UserID, error)
}

// TodoReader loads a todo with its author expanded.
type TodoReader interface {
	GetTodo(ctx context.Context, id domain.TodoID) (domain.Todo, error)
}

type AudienceResolver interface {
	Resolve(ctx context.Context, listID domain.ListID, snapshot []domain.UserID) domain.Audience
}

type Publisher interface {
	Publish(ctx context.Context, evt event.Event, snapshot []domain.UserID)
}

// EventQueue detaches publishing from the mutation path.
type EventQueue interface {
	Enqueue(evt event.Event, snapshot []domain.UserID) error
}

type ConnectionCounter interface {
	Count() int
}
