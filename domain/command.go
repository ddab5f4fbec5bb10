package domain

import (
	"fmt"
	"list-sync/errors"
)

type CreateListCommand struct {
	Name string `validate:"required,max=200"`
}

type RenameListCommand struct {
	Name string `validate:"required,max=200"`
}

type CreateTodoCommand struct {
	Title string `validate:"required,max=500"`
}

// UpdateTodoCommand only applies the fields that are set.
type UpdateTodoCommand struct {
	Title     *string `validate:"omitempty,min=1,max=500"`
	Completed *bool
}

type AddMemberCommand struct {
	UserID UserID `validate:"required,uuid"`
	Role   Role   `validate:"required,oneof=editor viewer"`
}

type ChangeRoleCommand struct {
	Role Role `validate:"required,oneof=editor viewer"`
}

// ValidateCommand checks the struct tags of any command above.
func ValidateCommand(cmd any) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}
