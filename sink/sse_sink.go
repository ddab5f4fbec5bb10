package sink

import (
	"context"
	"list-sync/contract"
	"list-sync/errors"
	"net/http"
	"sync"
	"time"
)

var _ contract.Sink = (*SSESink)(nil)

// SSESink writes records to an open text/event-stream response.
// Each record is framed as one "data:" line followed by a blank line.
//
// Close waits for an in-flight write, so once it returned the handler owning
// the ResponseWriter may safely return.
type SSESink struct {
	mu           sync.Mutex
	w            http.ResponseWriter
	rc           *http.ResponseController
	writeTimeout time.Duration
	closed       bool
	done         chan struct{}
}

func NewSSESink(w http.ResponseWriter, writeTimeout time.Duration) (*SSESink, error) {
	if _, ok := w.(http.Flusher); !ok {
		return nil, errors.ErrStreamUnsupported
	}
	return &SSESink{
		w:            w,
		rc:           http.NewResponseController(w),
		writeTimeout: writeTimeout,
		done:         make(chan struct{}),
	}, nil
}

func (s *SSESink) Write(ctx context.Context, frame []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrSinkClosed
	}

	if s.writeTimeout > 0 {
		// Not every ResponseWriter supports deadlines; a missing deadline is not fatal.
		_ = s.rc.SetWriteDeadline(time.Now().Add(s.writeTimeout))
		defer func() { _ = s.rc.SetWriteDeadline(time.Time{}) }()
	}

	buf := make([]byte, 0, len(frame)+8)
	buf = append(buf, "data: "...)
	buf = append(buf, frame...)
	buf = append(buf, '\n', '\n')
	if _, err := s.w.Write(buf); err != nil {
		return err
	}
	return s.rc.Flush()
}

func (s *SSESink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	return nil
}

// Done is closed once the sink has been closed, by the registry or by the handler.
func (s *SSESink) Done() <-chan struct{} { return s.done }
