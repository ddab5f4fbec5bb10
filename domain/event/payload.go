package event

import (
	"list-sync/domain"
	"time"
)

type AuthorPayload struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
}

type TodoPayload struct {
	ID        string        `json:"id"`
	ListID    string        `json:"listId"`
	Title     string        `json:"title"`
	Completed bool          `json:"completed"`
	Author    AuthorPayload `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type TodoDeletedPayload struct {
	TodoID string `json:"todoId"`
}

type ListPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListDeletedPayload struct {
	ListID string `json:"listId"`
}

type MemberPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role,omitempty"`
}

type ConnectedPayload struct {
	ConnectionID string `json:"connectionId"`
}

func FromTodo(t domain.Todo) TodoPayload {
	return TodoPayload{
		ID:        t.ID.String(),
		ListID:    t.ListID.String(),
		Title:     t.Title,
		Completed: t.Completed,
		Author: AuthorPayload{
			ID:          t.Author.ID.String(),
			DisplayName: t.Author.DisplayName,
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromList(l domain.List) ListPayload {
	return ListPayload{
		ID:        l.ID.String(),
		Name:      l.Name,
		OwnerID:   l.OwnerID.String(),
		UpdatedAt: l.UpdatedAt,
	}
}

func FromMember(m domain.Member) MemberPayload {
	return MemberPayload{
		UserID:      m.UserID.String(),
		DisplayName: m.DisplayName,
		Role:        string(m.Role),
	}
}
