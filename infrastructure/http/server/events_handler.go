package server

import (
	"list-sync/auth"
	"list-sync/services"
	"list-sync/sink"
	"log/slog"
	"net/http"
	"time"
)

// EventsHandler opens a long-lived push channel for the authenticated user.
// The request blocks until the client disconnects or the connection is evicted
// (failed write, heartbeat failure, stale sweep).
type EventsHandler struct {
	log          *slog.Logger
	streams      services.IStreamService
	writeTimeout time.Duration
}

func NewEventsHandler(log *slog.Logger, streams services.IStreamService, writeTimeout time.Duration) *EventsHandler {
	return &EventsHandler{log: log, streams: streams, writeTimeout: writeTimeout}
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	sseSink, err := sink.NewSSESink(w, h.writeTimeout)
	if err != nil {
		h.log.Error("Push channel unavailable", "user_id", userID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Intermediaries must neither buffer nor time out the stream.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	connectionID, err := h.streams.Subscribe(r.Context(), userID, sseSink)
	if err != nil {
		h.log.Warn("Subscribe failed", "user_id", userID, "error", err)
		return
	}
	defer h.streams.Unsubscribe(connectionID)

	select {
	case <-r.Context().Done():
		h.log.Debug("Client disconnected", "connection_id", connectionID, "user_id", userID)
	case <-sseSink.Done():
		h.log.Debug("Connection closed by server", "connection_id", connectionID, "user_id", userID)
	}
}
