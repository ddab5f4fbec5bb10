//go:generate go run go.uber.org/mock/mockgen -source=list_service.go -destination=../mocks/mock_list_service.go -package=mocks
package services

import (
	"context"
	"list-sync/domain"
	"list-sync/errors"
	"list-sync/infrastructure/storage"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// IListService runs list, todo and membership mutations on behalf of an actor,
// then hands the committed change to the notifier.
type IListService interface {
	CreateList(ctx context.Context, actorID domain.UserID, cmd domain.CreateListCommand) (domain.List, error)
	RenameList(ctx context.Context, actorID domain.UserID, listID domain.ListID, cmd domain.RenameListCommand) (domain.List, error)
	DeleteList(ctx context.Context, actorID domain.UserID, listID domain.ListID) error
	ListMembers(ctx context.Context, actorID domain.UserID, listID domain.ListID) ([]domain.Member, error)
	CreateTodo(ctx context.Context, actorID domain.UserID, listID domain.ListID, cmd domain.CreateTodoCommand) (domain.Todo, error)
	UpdateTodo(ctx context.Context, actorID domain.UserID, listID domain.ListID, todoID domain.TodoID, cmd domain.UpdateTodoCommand) (domain.Todo, error)
	DeleteTodo(ctx context.Context, actorID domain.UserID, listID domain.ListID, todoID domain.TodoID) error
	AddMember(ctx context.Context, actorID domain.UserID, listID domain.ListID, cmd domain.AddMemberCommand) (domain.Member, error)
	ChangeRole(ctx context.Context, actorID domain.UserID, listID domain.ListID, userID domain.UserID, cmd domain.ChangeRoleCommand) (domain.Member, error)
	RemoveMember(ctx context.Context, actorID domain.UserID, listID domain.ListID, userID domain.UserID) (domain.Member, error)
}

var (
	anyRole     = []domain.Role{domain.RoleOwner, domain.RoleEditor, domain.RoleViewer}
	writerRoles = []domain.Role{domain.RoleOwner, domain.RoleEditor}
	ownerOnly   = []domain.Role{domain.RoleOwner}
)

type ListService struct {
	log      *slog.Logger
	lists    storage.IListRepository
	todos    storage.ITodoRepository
	notifier INotifier
	now      func() time.Time
}

var _ IListService = (*ListService)(nil)

func NewListService(log *slog.Logger, lists storage.IListRepository, todos storage.ITodoRepository,
	notifier INotifier, now func() time.Time) *ListService {
	if now == nil {
		now = time.Now
	}
	return &ListService{log: log, lists: lists, todos: todos, notifier: notifier, now: now}
}

// CreateList makes the actor the owner. No event is published: nobody else can see the list yet.
func (s *ListService) CreateList(ctx context.Context, actorID domain.UserID, cmd domain.CreateListCommand) (domain.List, error) {
	if err := domain.ValidateCommand(cmd); err != nil {
		return domain.List{}, err
	}
	now := s.now().UTC()
	list := domain.List{
		ID:        domain.NewListID(),
		Name:      cmd.Name,
		OwnerID:   actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lists.CreateList(ctx, list); err != nil {
		return domain.List{}, err
	}
	return list, nil
}

func (s *ListService) RenameList(ctx context.Context, actorID domain.UserID, listID domain.ListID, cmd domain.RenameListCommand) (domain.List, error) {
	if err := domain.ValidateCommand(cmd); err != nil {
		return domain.List{}, err
	}
	if _, err := s.authorize(ctx, listID, actorID, writerRoles); err != nil {
		return domain.List{}, err
	}
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return domain.List{}, err
	}
	list.Name = cmd.Name
	list.UpdatedAt = s.now().UTC()
	if err := s.lists.UpdateList(ctx, list); err != nil {
		return domain.List{}, err
	}
	s.notifier.NotifyListUpdated(ctx, list, actorID)
	return list, nil
}

// DeleteList publishes with the membership captured by the deletion itself.
func (s *ListService) DeleteList(ctx context.Context, actorID domain.UserID, listID domain.ListID) error {
	if _, err := s.authorize(ctx, listID, actorID, ownerOnly); err != nil {
		return err
	}
	snapshot, err := s.lists.DeleteList(ctx, listID)
	if err != nil {
		return err
	}
	s.notifier.NotifyListDeleted(ctx, listID, snapshot, actorID)
	return nil
}

func (s *ListService) ListMembers(ctx context.Context, actorID domain.UserID, listID domain.ListID) ([]domain.Member, error) {
	if _, err := s.authorize(ctx, listID, actorID, anyRole); err != nil {
		return nil, err
	}
	return s.lists.ListMembers(ctx, listID)
}

func (s *ListService) CreateTodo(ctx context.Context, actorID domain.UserID, listID domain.ListID, cmd domain.CreateTodoCommand) (domain.Todo, error) {
	if err := domain.ValidateCommand(cmd); err != nil {
		return domain.Todo{}, err
	}
	if _, err := s.authorize(ctx, listID, actorID, writerRoles); err != nil {
		return domain.Todo{}, err
	}
	now := s.now().UTC()
	record := domain.TodoRecord{
		ID:        domain.NewTodoID(),
		ListID:    listID,
		Title:     cmd.Title,
		Author:    domain.AuthorRef{ID: actorID},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.todos.SaveTodo(ctx, record); err != nil {
		return domain.Todo{}, err
	}
	s.notifier.NotifyTodoCreated(ctx, record, actorID)
	return s.todos.GetTodo(ctx, record.ID)
}

func (s *ListService) UpdateTodo(ctx context.Context, actorID domain.UserID, listID domain.ListID, todoID domain.TodoID, cmd domain.UpdateTodoCommand) (domain.Todo, error) {
	if err := domain.ValidateCommand(cmd); err != nil {
		return domain.Todo{}, err
	}
	if _, err := s.authorize(ctx, listID, actorID, writerRoles); err != nil {
		return domain.Todo{}, err
	}
	current, err := s.todoInList(ctx, listID, todoID)
	if err != nil {
		return domain.Todo{}, err
	}

	record := domain.TodoRecord{
		ID:        current.ID,
		ListID:    current.ListID,
		Title:     lo.FromPtrOr(cmd.Title, current.Title),
		Completed: lo.FromPtrOr(cmd.Completed, current.Completed),
		Author:    domain.AuthorRef{ID: current.Author.ID},
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.todos.SaveTodo(ctx, record); err != nil {
		return domain.Todo{}, err
	}
	s.notifier.NotifyTodoUpdated(ctx, record, actorID)
	return record.Expand(current.Author), nil
}

func (s *ListService) DeleteTodo(ctx context.Context, actorID domain.UserID, listID domain.ListID, todoID domain.TodoID) error {
	if _, err := s.authorize(ctx, listID, actorID, writerRoles); err != nil {
		return err
	}
	if _, err := s.todoInList(ctx, listID, todoID); err != nil {
		return err
	}
	if err := s.todos.DeleteTodo(ctx, todoID); err != nil {
		return err
	}
	s.notifier.NotifyTodoDeleted(ctx, listID, todoID, actorID)
	return nil
}

func (s *ListService) AddMember(ctx context.Context, actorID domain.UserID, listID domain.ListID, cmd domain.AddMemberCommand) (domain.Member, error) {
	if err := domain.ValidateCommand(cmd); err != nil {
		return domain.Member{}, err
	}
	if _, err := s.authorize(ctx, listID, actorID, ownerOnly); err != nil {
		return domain.Member{}, err
	}
	member, err := s.lists.AddMember(ctx, domain.Member{
		ListID:  listID,
		UserID:  cmd.UserID,
		Role:    cmd.Role,
		AddedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.Member{}, err
	}
	s.notifier.NotifyMemberAdded(ctx, member, actorID)
	return member, nil
}

func (s *ListService) ChangeRole(ctx context.Context, actorID domain.UserID, listID domain.ListID, userID domain.UserID, cmd domain.ChangeRoleCommand) (domain.Member, error) {
	if err := domain.ValidateCommand(cmd); err != nil {
		return domain.Member{}, err
	}
	if _, err := s.authorize(ctx, listID, actorID, ownerOnly); err != nil {
		return domain.Member{}, err
	}
	if err := s.ensureNotOwner(ctx, listID, userID); err != nil {
		return domain.Member{}, err
	}
	member, err := s.lists.ChangeRole(ctx, listID, userID, cmd.Role)
	if err != nil {
		return domain.Member{}, err
	}
	s.notifier.NotifyMemberRoleChanged(ctx, member, actorID)
	return member, nil
}

// RemoveMember is allowed to the owner, and to any member removing itself.
// The owner can never be removed.
func (s *ListService) RemoveMember(ctx context.Context, actorID domain.UserID, listID domain.ListID, userID domain.UserID) (domain.Member, error) {
	allowed := ownerOnly
	if actorID == userID {
		allowed = anyRole
	}
	if _, err := s.authorize(ctx, listID, actorID, allowed); err != nil {
		return domain.Member{}, err
	}
	if err := s.ensureNotOwner(ctx, listID, userID); err != nil {
		return domain.Member{}, err
	}
	member, err := s.lists.RemoveMember(ctx, listID, userID)
	if err != nil {
		return domain.Member{}, err
	}
	s.notifier.NotifyMemberRemoved(ctx, member, actorID)
	return member, nil
}

// authorize returns the actor membership if its role is one of allowed.
// Non-members get errors.ErrNotAMember whether or not the list exists.
func (s *ListService) authorize(ctx context.Context, listID domain.ListID, actorID domain.UserID, allowed []domain.Role) (domain.Member, error) {
	if err := domain.ValidateListID(listID); err != nil {
		return domain.Member{}, err
	}
	member, err := s.lists.GetMember(ctx, listID, actorID)
	if err != nil {
		return domain.Member{}, err
	}
	if !lo.Contains(allowed, member.Role) {
		s.log.Debug("Mutation refused", "list_id", listID, "user_id", actorID, "role", member.Role)
		return domain.Member{}, errors.ErrForbidden
	}
	return member, nil
}

func (s *ListService) ensureNotOwner(ctx context.Context, listID domain.ListID, userID domain.UserID) error {
	target, err := s.lists.GetMember(ctx, listID, userID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleOwner {
		return errors.ErrForbidden
	}
	return nil
}

func (s *ListService) todoInList(ctx context.Context, listID domain.ListID, todoID domain.TodoID) (domain.Todo, error) {
	todo, err := s.todos.GetTodo(ctx, todoID)
	if err != nil {
		return domain.Todo{}, err
	}
	if todo.ListID != listID {
		return domain.Todo{}, errors.ErrTodoNotFound
	}
	return todo, nil
}
