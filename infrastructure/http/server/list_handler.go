package server

import (
	"encoding/json"
	"fmt"
	"list-sync/auth"
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/errors"
	"list-sync/services"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// ListHandler exposes list, todo and membership mutations.
// Responses reuse the payload shapes of the pushed events.
type ListHandler struct {
	log   *slog.Logger
	lists services.IListService
}

func NewListHandler(log *slog.Logger, lists services.IListService) *ListHandler {
	return &ListHandler{log: log, lists: lists}
}

// Routes must be mounted behind auth.Middleware.
func (h *ListHandler) Routes(r chi.Router) {
	r.Post("/", h.createList)
	r.Route("/{listID}", func(r chi.Router) {
		r.Patch("/", h.renameList)
		r.Delete("/", h.deleteList)

		r.Post("/todos", h.createTodo)
		r.Patch("/todos/{todoID}", h.updateTodo)
		r.Delete("/todos/{todoID}", h.deleteTodo)

		r.Get("/members", h.listMembers)
		r.Post("/members", h.addMember)
		r.Patch("/members/{userID}", h.changeRole)
		r.Delete("/members/{userID}", h.removeMember)
	})
}

type nameRequest struct {
	Name string `json:"name"`
}

type todoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type memberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (h *ListHandler) createList(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !h.decode(w, r, &req) {
		return
	}
	list, err := h.lists.CreateList(r.Context(), actor(r), domain.CreateListCommand{Name: req.Name})
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusCreated, event.FromList(list))
}

func (h *ListHandler) renameList(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !h.decode(w, r, &req) {
		return
	}
	list, err := h.lists.RenameList(r.Context(), actor(r), listID(r), domain.RenameListCommand{Name: req.Name})
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, event.FromList(list))
}

func (h *ListHandler) deleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.lists.DeleteList(r.Context(), actor(r), listID(r)); err != nil {
		writeError(h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListHandler) createTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if !h.decode(w, r, &req) {
		return
	}
	todo, err := h.lists.CreateTodo(r.Context(), actor(r), listID(r), domain.CreateTodoCommand{
		Title: lo.FromPtr(req.Title),
	})
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusCreated, event.FromTodo(todo))
}

func (h *ListHandler) updateTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if !h.decode(w, r, &req) {
		return
	}
	todo, err := h.lists.UpdateTodo(r.Context(), actor(r), listID(r), todoID(r), domain.UpdateTodoCommand{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, event.FromTodo(todo))
}

func (h *ListHandler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.lists.DeleteTodo(r.Context(), actor(r), listID(r), todoID(r)); err != nil {
		writeError(h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListHandler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.lists.ListMembers(r.Context(), actor(r), listID(r))
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, lo.Map(members, func(m domain.Member, _ int) event.MemberPayload {
		return event.FromMember(m)
	}))
}

func (h *ListHandler) addMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if !h.decode(w, r, &req) {
		return
	}
	member, err := h.lists.AddMember(r.Context(), actor(r), listID(r), domain.AddMemberCommand{
		UserID: domain.UserID(req.UserID),
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusCreated, event.FromMember(member))
}

func (h *ListHandler) changeRole(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if !h.decode(w, r, &req) {
		return
	}
	member, err := h.lists.ChangeRole(r.Context(), actor(r), listID(r), memberID(r), domain.ChangeRoleCommand{
		Role: domain.Role(req.Role),
	})
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, event.FromMember(member))
}

func (h *ListHandler) removeMember(w http.ResponseWriter, r *http.Request) {
	if _, err := h.lists.RemoveMember(r.Context(), actor(r), listID(r), memberID(r)); err != nil {
		writeError(h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(h.log, w, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err))
		return false
	}
	return true
}

// actor is always set: the router mounts these routes behind auth.Middleware.
func actor(r *http.Request) domain.UserID {
	userID, _ := auth.UserIDFromContext(r.Context())
	return userID
}

func listID(r *http.Request) domain.ListID { return domain.ListID(chi.URLParam(r, "listID")) }

func todoID(r *http.Request) domain.TodoID { return domain.TodoID(chi.URLParam(r, "todoID")) }

func memberID(r *http.Request) domain.UserID { return domain.UserID(chi.URLParam(r, "userID")) }
