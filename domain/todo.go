package domain

import "time"

// AuthorRef is the unexpanded form of a todo author, as mutation handlers hold it.
type AuthorRef struct {
	ID UserID
}

// Author is the expanded form of a todo author, resolved by the storage layer.
type Author struct {
	ID          UserID
	DisplayName string
}

// TodoRecord is a todo as written by a mutation: its author is only a reference.
type TodoRecord struct {
	ID        TodoID
	ListID    ListID
	Title     string
	Completed bool
	Author    AuthorRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Todo is a todo with its author expanded.
type Todo struct {
	ID        TodoID
	ListID    ListID
	Title     string
	Completed bool
	Author    Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expand builds a Todo from a record and an already resolved author.
func (r TodoRecord) Expand(author Author) Todo {
	return Todo{
		ID:        r.ID,
		ListID:    r.ListID,
		Title:     r.Title,
		Completed: r.Completed,
		Author:    author,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type User struct {
	ID          UserID
	DisplayName string
	CreatedAt   time.Time
}
