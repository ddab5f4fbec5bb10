//go:generate go run go.uber.org/mock/mockgen -source=list_repository.go -destination=../../mocks/mock_list_repository.go -package=mocks
package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IListRepository interface {
	CreateList(ctx context.Context, list domain.List) error
	GetList(ctx context.Context, id domain.ListID) (domain.List, error)
	UpdateList(ctx context.Context, list domain.List) error
	DeleteList(ctx context.Context, id domain.ListID) ([]domain.UserID, error)
	AddMember(ctx context.Context, member domain.Member) (domain.Member, error)
	RemoveMember(ctx context.Context, listID domain.ListID, userID domain.UserID) (domain.Member, error)
	ChangeRole(ctx context.Context, listID domain.ListID, userID domain.UserID, role domain.Role) (domain.Member, error)
	ListMembers(ctx context.Context, listID domain.ListID) ([]domain.Member, error)
	GetMember(ctx context.Context, listID domain.ListID, userID domain.UserID) (domain.Member, error)
	LoadCurrentMemberIDs(ctx context.Context, listID domain.ListID) ([]domain.UserID, error)
}

var _ contract.MembershipStore = (*ListRepository)(nil)

// ListRepository persists lists and their memberships in BadgerDB.
// Members are read with their display name already expanded, so callers only
// ever see resolved values.
type ListRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewListRepository(db *badger.DB, log *slog.Logger) *ListRepository {
	return &ListRepository{db: db, log: log}
}

type listRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type memberRecord struct {
	ListID  string    `json:"listId"`
	UserID  string    `json:"userId"`
	Role    string    `json:"role"`
	AddedAt time.Time `json:"addedAt"`
}

// CreateList stores the list and registers its owner as a member, atomically.
func (r ListRepository) CreateList(_ context.Context, list domain.List) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := setJSON(txn, listKey(list.ID.String()), fromList(list)); err != nil {
			return err
		}
		return setJSON(txn, memberKey(list.ID.String(), list.OwnerID.String()), memberRecord{
			ListID:  list.ID.String(),
			UserID:  list.OwnerID.String(),
			Role:    string(domain.RoleOwner),
			AddedAt: list.CreatedAt,
		})
	})
}

func (r ListRepository) GetList(_ context.Context, id domain.ListID) (domain.List, error) {
	var list domain.List
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		list, err = readList(txn, id)
		return err
	})
	return list, err
}

func (r ListRepository) UpdateList(_ context.Context, list domain.List) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := readList(txn, list.ID); err != nil {
			return err
		}
		return setJSON(txn, listKey(list.ID.String()), fromList(list))
	})
}

// DeleteList removes the list and all its memberships.
// TODO: todos of the deleted list are left behind; key them by list id to drop them in the same transaction.
// It returns the member ids as they were right before the deletion, which is
// the only way to address the former members once the list is gone.
func (r ListRepository) DeleteList(_ context.Context, id domain.ListID) ([]domain.UserID, error) {
	var snapshot []domain.UserID
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := readList(txn, id); err != nil {
			return err
		}
		ids, err := scanMemberIDs(txn, id)
		if err != nil {
			return err
		}
		for _, userID := range ids {
			if err := txn.Delete(memberKey(id.String(), userID.String())); err != nil {
				return err
			}
		}
		snapshot = ids
		return txn.Delete(listKey(id.String()))
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("List deleted", "list_id", id, "members", len(snapshot))
	return snapshot, nil
}

func (r ListRepository) AddMember(_ context.Context, member domain.Member) (domain.Member, error) {
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := readList(txn, member.ListID); err != nil {
			return err
		}
		user, err := readUser(txn, member.UserID)
		if err != nil {
			return err
		}
		key := memberKey(member.ListID.String(), member.UserID.String())
		if _, err := txn.Get(key); err == nil {
			return errors.ErrMemberExists
		}
		member.DisplayName = user.DisplayName
		return setJSON(txn, key, fromMember(member))
	})
	if err != nil {
		return domain.Member{}, err
	}
	return member, nil
}

// RemoveMember deletes the membership and returns it as it was stored.
func (r ListRepository) RemoveMember(_ context.Context, listID domain.ListID, userID domain.UserID) (domain.Member, error) {
	var removed domain.Member
	err := r.db.Update(func(txn *badger.Txn) error {
		member, err := readMember(txn, listID, userID)
		if err != nil {
			return err
		}
		removed = member
		return txn.Delete(memberKey(listID.String(), userID.String()))
	})
	return removed, err
}

func (r ListRepository) ChangeRole(_ context.Context, listID domain.ListID, userID domain.UserID, role domain.Role) (domain.Member, error) {
	var updated domain.Member
	err := r.db.Update(func(txn *badger.Txn) error {
		member, err := readMember(txn, listID, userID)
		if err != nil {
			return err
		}
		member.Role = role
		updated = member
		return setJSON(txn, memberKey(listID.String(), userID.String()), fromMember(member))
	})
	return updated, err
}

func (r ListRepository) ListMembers(_ context.Context, listID domain.ListID) ([]domain.Member, error) {
	var members []domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		if _, err := readList(txn, listID); err != nil {
			return err
		}
		ids, err := scanMemberIDs(txn, listID)
		if err != nil {
			return err
		}
		for _, userID := range ids {
			member, err := readMember(txn, listID, userID)
			if err != nil {
				return err
			}
			members = append(members, member)
		}
		return nil
	})
	return members, err
}

func (r ListRepository) GetMember(_ context.Context, listID domain.ListID, userID domain.UserID) (domain.Member, error) {
	var member domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		member, err = readMember(txn, listID, userID)
		return err
	})
	return member, err
}

// LoadCurrentMemberIDs returns errors.ErrListNotFound when the list does not exist,
// and an empty slice for a list without members.
func (r ListRepository) LoadCurrentMemberIDs(_ context.Context, listID domain.ListID) ([]domain.UserID, error) {
	var ids []domain.UserID
	err := r.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get(listKey(listID.String())); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrListNotFound
			}
			return err
		}
		var err error
		ids, err = scanMemberIDs(txn, listID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// scanMemberIDs only walks keys: the user id is the last segment of the member key.
func scanMemberIDs(txn *badger.Txn, listID domain.ListID) ([]domain.UserID, error) {
	prefix := memberListPrefix(listID.String())
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	ids := make([]domain.UserID, 0)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		key := string(it.Item().Key())
		userID := strings.TrimPrefix(key, string(prefix))
		if userID == "" {
			return nil, fmt.Errorf("malformed member key %q", key)
		}
		ids = append(ids, domain.UserID(userID))
	}
	return ids, nil
}

func readList(txn *badger.Txn, id domain.ListID) (domain.List, error) {
	var rec listRecord
	if err := getJSON(txn, listKey(id.String()), &rec); err != nil {
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return domain.List{}, errors.ErrListNotFound
		}
		return domain.List{}, err
	}
	return toList(rec), nil
}

func readMember(txn *badger.Txn, listID domain.ListID, userID domain.UserID) (domain.Member, error) {
	var rec memberRecord
	if err := getJSON(txn, memberKey(listID.String(), userID.String()), &rec); err != nil {
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return domain.Member{}, errors.ErrNotAMember
		}
		return domain.Member{}, err
	}
	name, err := displayName(txn, userID)
	if err != nil {
		return domain.Member{}, err
	}
	member := toMember(rec)
	member.DisplayName = name
	return member, nil
}

func fromList(l domain.List) listRecord {
	return listRecord{
		ID:        l.ID.String(),
		Name:      l.Name,
		OwnerID:   l.OwnerID.String(),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toList(rec listRecord) domain.List {
	return domain.List{
		ID:        domain.ListID(rec.ID),
		Name:      rec.Name,
		OwnerID:   domain.UserID(rec.OwnerID),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func fromMember(m domain.Member) memberRecord {
	return memberRecord{
		ListID:  m.ListID.String(),
		UserID:  m.UserID.String(),
		Role:    string(m.Role),
		AddedAt: m.AddedAt,
	}
}

func toMember(rec memberRecord) domain.Member {
	return domain.Member{
		ListID:  domain.ListID(rec.ListID),
		UserID:  domain.UserID(rec.UserID),
		Role:    domain.Role(rec.Role),
		AddedAt: rec.AddedAt,
	}
}
