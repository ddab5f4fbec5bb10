//go:generate go run go.uber.org/mock/mockgen -source=todo_repository.go -destination=../../mocks/mock_todo_repository.go -package=mocks
package storage

import (
	"context"
	stderrors "errors"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type ITodoRepository interface {
	SaveTodo(ctx context.Context, todo domain.TodoRecord) error
	DeleteTodo(ctx context.Context, id domain.TodoID) error
	GetTodo(ctx context.Context, id domain.TodoID) (domain.Todo, error)
}

var _ contract.TodoReader = (*TodoRepository)(nil)

type TodoRepository struct {
	db *badger.DB
}

func NewTodoRepository(db *badger.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// todoRecord only stores the author id: the author is expanded on read.
type todoRecord struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveTodo creates or replaces a todo. The list must exist.
func (t TodoRepository) SaveTodo(_ context.Context, todo domain.TodoRecord) error {
	return t.db.Update(func(txn *badger.Txn) error {
		if _, err := readList(txn, todo.ListID); err != nil {
			return err
		}
		return setJSON(txn, todoKey(todo.ID.String()), fromTodoRecord(todo))
	})
}

func (t TodoRepository) DeleteTodo(_ context.Context, id domain.TodoID) error {
	return t.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(todoKey(id.String())); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrTodoNotFound
			}
			return err
		}
		return txn.Delete(todoKey(id.String()))
	})
}

// GetTodo returns the todo with its author expanded to id and display name.
func (t TodoRepository) GetTodo(_ context.Context, id domain.TodoID) (domain.Todo, error) {
	var todo domain.Todo
	err := t.db.View(func(txn *badger.Txn) error {
		var rec todoRecord
		if err := getJSON(txn, todoKey(id.String()), &rec); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrTodoNotFound
			}
			return err
		}
		name, err := displayName(txn, domain.UserID(rec.AuthorID))
		if err != nil {
			return err
		}
		todo = toTodoRecord(rec).Expand(domain.Author{
			ID:          domain.UserID(rec.AuthorID),
			DisplayName: name,
		})
		return nil
	})
	return todo, err
}

func fromTodoRecord(r domain.TodoRecord) todoRecord {
	return todoRecord{
		ID:        r.ID.String(),
		ListID:    r.ListID.String(),
		Title:     r.Title,
		Completed: r.Completed,
		AuthorID:  r.Author.ID.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toTodoRecord(rec todoRecord) domain.TodoRecord {
	return domain.TodoRecord{
		ID:        domain.TodoID(rec.ID),
		ListID:    domain.ListID(rec.ListID),
		Title:     rec.Title,
		Completed: rec.Completed,
		Author:    domain.AuthorRef{ID: domain.UserID(rec.AuthorID)},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
