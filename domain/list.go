package domain

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

type List struct {
	ID        ListID
	Name      string
	OwnerID   UserID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member links a user to a list with a role.
type Member struct {
	ListID      ListID
	UserID      UserID
	DisplayName string
	Role        Role
	AddedAt     time.Time
}
