package sink

import (
	"context"
	"list-sync/contract"
	"list-sync/errors"
	"sync"
)

var _ contract.Sink = (*MemorySink)(nil)

// MemorySink keeps every written record in memory.
// Setting Fail makes every later write return that error.
type MemorySink struct {
	mu     sync.Mutex
	frames [][]byte
	closed int
	Fail   error
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Write(_ context.Context, frame []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	if m.closed > 0 {
		return errors.ErrSinkClosed
	}
	m.frames = append(m.frames, append([]byte(nil), frame...))
	return nil
}

func (m *MemorySink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return nil
}

func (m *MemorySink) Frames() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]byte(nil), m.frames...)
}

// CloseCount tells how many times Close was called.
func (m *MemorySink) CloseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
