package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrConnectionAlreadyRegistered = fmt.Errorf("connection already registered")
	ErrSinkClosed                  = fmt.Errorf("sink is closed")
	ErrStreamUnsupported           = fmt.Errorf("streaming unsupported by response writer")
	ErrPublishQueueFull            = fmt.Errorf("publish queue is full")

	ErrInvalidListID  = fmt.Errorf("invalid list id")
	ErrListNotFound   = fmt.Errorf("list not found")
	ErrTodoNotFound   = fmt.Errorf("todo not found")
	ErrUserNotFound   = fmt.Errorf("user not found")
	ErrMemberExists   = fmt.Errorf("user is already a member of the list")
	ErrNotAMember     = fmt.Errorf("user is not a member of the list")
	ErrForbidden      = fmt.Errorf("operation not allowed for this role")
	ErrInvalidRequest = fmt.Errorf("invalid request")

	ErrMissingToken    = fmt.Errorf("authorization token is missing")
	ErrInvalidToken    = fmt.Errorf("invalid or expired token")
	ErrUnauthenticated = fmt.Errorf("no authenticated user")
)
