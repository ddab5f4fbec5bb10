// Package domain contains core concepts of the collaborative lists system.
// This file defines identifiers and their validation rules.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"fmt"

	"list-sync/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type UserID string

type ListID string

type TodoID string

// GlobalListID marks events which are not scoped to a list (pings, acknowledgments).
const GlobalListID ListID = "global"

func NewListID() ListID { return ListID(uuid.NewString()) }

func NewTodoID() TodoID { return TodoID(uuid.NewString()) }

func NewUserID() UserID { return UserID(uuid.NewString()) }

func (id ListID) String() string { return string(id) }

func (id UserID) String() string { return string(id) }

func (id TodoID) String() string { return string(id) }

// ValidateListID rejects empty ids and anything not shaped like a UUID.
// The global sentinel is not a valid list id.
func ValidateListID(id ListID) error {
	if err := validate.Var(string(id), "required,uuid"); err != nil {
		return fmt.Errorf("%w: %q", errors.ErrInvalidListID, string(id))
	}
	return nil
}
