//go:generate go run go.uber.org/mock/mockgen -source=stream_service.go -destination=../mocks/mock_stream_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"list-sync/contract"
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/errors"
	"list-sync/runtime"
	"log/slog"
	"time"
)

type IStreamService interface {
	Subscribe(ctx context.Context, ownerID domain.UserID, sink contract.Sink) (string, error)
	Unsubscribe(connectionID string)
	ActiveConnections() int
}

// StreamService opens and closes push channels on behalf of authenticated users.
type StreamService struct {
	log      *slog.Logger
	registry *runtime.Registry
	now      func() time.Time
}

var _ IStreamService = (*StreamService)(nil)

func NewStreamService(log *slog.Logger, registry *runtime.Registry, now func() time.Time) *StreamService {
	if now == nil {
		now = time.Now
	}
	return &StreamService{log: log, registry: registry, now: now}
}

// Subscribe registers a new connection for ownerID, acknowledges it with a
// "connected" event and returns its id. If the acknowledgment cannot be written,
// the connection is dropped.
func (s *StreamService) Subscribe(ctx context.Context, ownerID domain.UserID, sink contract.Sink) (string, error) {
	if ownerID == "" {
		return "", errors.ErrUnauthenticated
	}

	conn := runtime.NewConnection(ownerID, sink, s.now)
	if err := s.registry.Register(conn); err != nil {
		return "", err
	}

	if err := conn.Send(ctx, event.NewConnected(conn.ID, s.now())); err != nil {
		s.registry.Unregister(conn.ID)
		return "", fmt.Errorf("acknowledge connection: %w", err)
	}

	s.log.Info("Push channel opened",
		"connection_id", conn.ID,
		"user_id", ownerID,
		"active", s.registry.Count())
	return conn.ID, nil
}

func (s *StreamService) Unsubscribe(connectionID string) {
	s.registry.Unregister(connectionID)
	s.log.Info("Push channel closed", "connection_id", connectionID, "active", s.registry.Count())
}

func (s *StreamService) ActiveConnections() int {
	return s.registry.Count()
}
