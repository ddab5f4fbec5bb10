package runtime

import (
	"fmt"
	"list-sync/errors"
	"log/slog"
	"sync"
)

// Registry holds every live push connection keyed by connection id.
// It is the only shared mutable state of the real-time service.
type Registry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	connections map[string]*Connection
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:         log,
		connections: make(map[string]*Connection),
	}
}

// Register inserts a connection. Ids are generated, so a duplicate means a programming error.
func (r *Registry) Register(conn *Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.connections[conn.ID]; exists {
		return fmt.Errorf("%w: %s", errors.ErrConnectionAlreadyRegistered, conn.ID)
	}
	r.connections[conn.ID] = conn
	return nil
}

// Unregister removes the connection and closes its sink.
// Unknown ids and repeated calls are no-ops; close failures are swallowed.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	conn, ok := r.connections[id]
	if ok {
		delete(r.connections, id)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	// The sink is closed outside the lock: closing may wait for an in-flight write.
	if err := conn.Close(); err != nil {
		r.log.Debug("Closing connection sink failed", "connection_id", id, "error", err)
	}
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}

// ForEach visits a snapshot of the registered connections.
// A visit may unregister connections, including the one it is visiting.
func (r *Registry) ForEach(visit func(conn *Connection)) {
	for _, conn := range r.snapshot() {
		visit(conn)
	}
}

func (r *Registry) snapshot() []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := make([]*Connection, 0, len(r.connections))
	for _, conn := range r.connections {
		conns = append(conns, conn)
	}
	return conns
}
