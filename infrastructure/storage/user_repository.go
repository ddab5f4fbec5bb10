//go:generate go run go.uber.org/mock/mockgen -source=user_repository.go -destination=../../mocks/mock_user_repository.go -package=mocks
package storage

import (
	stderrors "errors"
	"list-sync/domain"
	"list-sync/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	SaveUser(user domain.User) error
	GetUser(id domain.UserID) (domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRecord struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u UserRepository) SaveUser(user domain.User) error {
	return u.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, userKey(user.ID.String()), userRecord{
			ID:          user.ID.String(),
			DisplayName: user.DisplayName,
			CreatedAt:   user.CreatedAt,
		})
	})
}

func (u UserRepository) GetUser(id domain.UserID) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = readUser(txn, id)
		return err
	})
	return user, err
}

func readUser(txn *badger.Txn, id domain.UserID) (domain.User, error) {
	var rec userRecord
	if err := getJSON(txn, userKey(id.String()), &rec); err != nil {
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return domain.User{}, errors.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return domain.User{
		ID:          domain.UserID(rec.ID),
		DisplayName: rec.DisplayName,
		CreatedAt:   rec.CreatedAt,
	}, nil
}

// displayName returns an empty name for unknown users instead of failing the read.
func displayName(txn *badger.Txn, id domain.UserID) (string, error) {
	user, err := readUser(txn, id)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		return "", nil
	}
	return user.DisplayName, err
}
