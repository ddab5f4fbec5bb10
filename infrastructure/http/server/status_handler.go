package server

import (
	"encoding/json"
	"list-sync/observability"
	"log/slog"
	"net/http"
)

// QueueStats reports how full the publish queue is.
type QueueStats interface {
	Len() int
	Cap() int
}

// StatusResponse flattens the process stats next to the connection count.
type StatusResponse struct {
	ActiveConnections int         `json:"activeConnections"`
	PublishQueue      QueueStatus `json:"publishQueue"`
	*observability.ProcessStats
}

type QueueStatus struct {
	Length   int `json:"length"`
	Capacity int `json:"capacity"`
}

// StatusHandler answers the operational status query of the real-time service.
type StatusHandler struct {
	log         *slog.Logger
	connections func() int
	queue       QueueStats
	stats       func() (observability.ProcessStats, error)
}

func NewStatusHandler(log *slog.Logger, connections func() int, queue QueueStats,
	stats func() (observability.ProcessStats, error)) *StatusHandler {
	return &StatusHandler{log: log, connections: connections, queue: queue, stats: stats}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	resp := StatusResponse{
		ActiveConnections: h.connections(),
		PublishQueue: QueueStatus{
			Length:   h.queue.Len(),
			Capacity: h.queue.Cap(),
		},
	}
	if h.stats != nil {
		if stats, err := h.stats(); err != nil {
			h.log.Warn("Failed to collect self stats", "error", err)
		} else {
			resp.ProcessStats = &stats
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("Writing status failed", "error", err)
	}
}
