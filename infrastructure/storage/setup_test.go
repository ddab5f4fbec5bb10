package storage

import (
	"list-sync/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

type seeded struct {
	users *UserRepository
	lists *ListRepository
	todos *TodoRepository
	list  domain.List
	alice domain.UserID
	bob   domain.UserID
}

// seed stores Alice and Bob and a list owned by Alice.
func seed(t *testing.T, db *badger.DB) seeded {
	req := require.New(t)
	s := seeded{
		users: NewUserRepository(db),
		lists: NewListRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug)),
		todos: NewTodoRepository(db),
		alice: domain.NewUserID(),
		bob:   domain.NewUserID(),
	}
	req.NoError(s.users.SaveUser(domain.User{ID: s.alice, DisplayName: "Alice", CreatedAt: createdAt}))
	req.NoError(s.users.SaveUser(domain.User{ID: s.bob, DisplayName: "Bob", CreatedAt: createdAt}))

	s.list = domain.List{ID: domain.NewListID(), Name: "Groceries", OwnerID: s.alice, CreatedAt: createdAt, UpdatedAt: createdAt}
	req.NoError(s.lists.CreateList(t.Context(), s.list))
	return s
}
