package server

import (
	"encoding/json"
	stderrors "errors"
	"list-sync/errors"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Writing response failed", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses. Unknown errors are logged and hidden.
func writeError(log *slog.Logger, w http.ResponseWriter, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
		msg = http.StatusText(status)
	}
	writeJSON(log, w, status, errorResponse{Error: msg})
}

func statusOf(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrInvalidRequest), stderrors.Is(err, errors.ErrInvalidListID):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(err, errors.ErrNotAMember),
		stderrors.Is(err, errors.ErrListNotFound),
		stderrors.Is(err, errors.ErrTodoNotFound),
		stderrors.Is(err, errors.ErrUserNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrMemberExists):
		return http.StatusConflict
	case stderrors.Is(err, errors.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
