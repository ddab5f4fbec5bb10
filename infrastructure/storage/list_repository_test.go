package storage

import (
	"list-sync/domain"
	"list-sync/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListRepository_CreateList_Registers_Owner(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	s := seed(t, db)

	// When
	ids, err := s.lists.LoadCurrentMemberIDs(t.Context(), s.list.ID)

	// Then
	req.NoError(err)
	req.Equal([]domain.UserID{s.alice}, ids)

	owner, err := s.lists.GetMember(t.Context(), s.list.ID, s.alice)
	req.NoError(err)
	req.Equal(domain.RoleOwner, owner.Role)
	req.Equal("Alice", owner.DisplayName)
}

func TestListRepository_LoadCurrentMemberIDs_Unknown_List(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	lists := seed(t, db).lists

	// When
	ids, err := lists.LoadCurrentMemberIDs(t.Context(), domain.NewListID())

	// Then
	req.ErrorIs(err, errors.ErrListNotFound)
	req.Nil(ids)
}

func TestListRepository_Membership_Lifecycle(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	s := seed(t, db)

	// When Bob is added
	added, err := s.lists.AddMember(t.Context(), domain.Member{ListID: s.list.ID, UserID: s.bob, Role: domain.RoleViewer, AddedAt: createdAt})

	// Then his display name is expanded
	req.NoError(err)
	req.Equal("Bob", added.DisplayName)
	ids, err := s.lists.LoadCurrentMemberIDs(t.Context(), s.list.ID)
	req.NoError(err)
	req.ElementsMatch([]domain.UserID{s.alice, s.bob}, ids)

	// And adding him twice fails
	_, err = s.lists.AddMember(t.Context(), domain.Member{ListID: s.list.ID, UserID: s.bob, Role: domain.RoleViewer})
	req.ErrorIs(err, errors.ErrMemberExists)

	// When his role changes
	changed, err := s.lists.ChangeRole(t.Context(), s.list.ID, s.bob, domain.RoleEditor)
	req.NoError(err)
	req.Equal(domain.RoleEditor, changed.Role)

	// When he is removed
	removed, err := s.lists.RemoveMember(t.Context(), s.list.ID, s.bob)
	req.NoError(err)
	req.Equal(domain.RoleEditor, removed.Role)
	req.Equal("Bob", removed.DisplayName)

	// Then the current membership no longer contains him
	ids, err = s.lists.LoadCurrentMemberIDs(t.Context(), s.list.ID)
	req.NoError(err)
	req.Equal([]domain.UserID{s.alice}, ids)

	_, err = s.lists.RemoveMember(t.Context(), s.list.ID, s.bob)
	req.ErrorIs(err, errors.ErrNotAMember)
}

func TestListRepository_DeleteList_Returns_Snapshot(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	s := seed(t, db)
	_, err := s.lists.AddMember(t.Context(), domain.Member{ListID: s.list.ID, UserID: s.bob, Role: domain.RoleEditor})
	req.NoError(err)

	// When
	snapshot, err := s.lists.DeleteList(t.Context(), s.list.ID)

	// Then the snapshot holds the members as they were
	req.NoError(err)
	req.ElementsMatch([]domain.UserID{s.alice, s.bob}, snapshot)

	// And the list can no longer be queried
	_, err = s.lists.LoadCurrentMemberIDs(t.Context(), s.list.ID)
	req.ErrorIs(err, errors.ErrListNotFound)
	_, err = s.lists.GetMember(t.Context(), s.list.ID, s.bob)
	req.ErrorIs(err, errors.ErrNotAMember)
}

func TestListRepository_Member_Scan_Does_Not_Leak_Across_Lists(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	s := seed(t, db)

	// Given a second list owned by Bob
	other := domain.List{ID: domain.NewListID(), Name: "Chores", OwnerID: s.bob, CreatedAt: createdAt}
	req.NoError(s.lists.CreateList(t.Context(), other))

	// When
	members, err := s.lists.ListMembers(t.Context(), s.list.ID)

	// Then
	req.NoError(err)
	req.Len(members, 1)
	req.Equal(s.alice, members[0].UserID)
}

func TestListRepository_UpdateList(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	s := seed(t, db)

	// When
	s.list.Name = "Weekend groceries"
	req.NoError(s.lists.UpdateList(t.Context(), s.list))

	// Then
	got, err := s.lists.GetList(t.Context(), s.list.ID)
	req.NoError(err)
	req.Equal("Weekend groceries", got.Name)

	// And an unknown list cannot be updated
	err = s.lists.UpdateList(t.Context(), domain.List{ID: domain.NewListID()})
	req.ErrorIs(err, errors.ErrListNotFound)
}

func TestListRepository_AddMember_Unknown_User(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	s := seed(t, db)

	// When a user without a stored profile is added
	ghost := domain.NewUserID()
	_, err := s.lists.AddMember(t.Context(), domain.Member{ListID: s.list.ID, UserID: ghost, Role: domain.RoleViewer})

	// Then nothing is written and the audience is unchanged
	req.ErrorIs(err, errors.ErrUserNotFound)
	ids, err := s.lists.LoadCurrentMemberIDs(t.Context(), s.list.ID)
	req.NoError(err)
	req.Equal([]domain.UserID{s.alice}, ids)
}
