package sink

import (
	"context"
	"list-sync/errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// plainWriter hides the Flusher of the recorder.
type plainWriter struct{ http.ResponseWriter }

func TestSSESink_Frames_Records(t *testing.T) {
	req := require.New(t)
	rec := httptest.NewRecorder()
	sse, err := NewSSESink(rec, time.Second)
	req.NoError(err)

	// When two records are written
	req.NoError(sse.Write(context.Background(), []byte(`{"type":"ping"}`)))
	req.NoError(sse.Write(context.Background(), []byte(`{"type":"connected"}`)))

	// Then each one is a data line followed by a blank line, flushed
	req.Equal("data: {\"type\":\"ping\"}\n\ndata: {\"type\":\"connected\"}\n\n", rec.Body.String())
	req.True(rec.Flushed)
}

func TestSSESink_Requires_Flusher(t *testing.T) {
	req := require.New(t)

	// When
	_, err := NewSSESink(plainWriter{httptest.NewRecorder()}, time.Second)

	// Then
	req.ErrorIs(err, errors.ErrStreamUnsupported)
}

func TestSSESink_Close_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	rec := httptest.NewRecorder()
	sse, err := NewSSESink(rec, 0)
	req.NoError(err)

	// When
	req.NoError(sse.Close())
	req.NoError(sse.Close())

	// Then writes are refused and Done is released
	req.ErrorIs(sse.Write(context.Background(), []byte("{}")), errors.ErrSinkClosed)
	select {
	case <-sse.Done():
	default:
		req.Fail("Done should be closed")
	}
	req.Empty(rec.Body.String())
}

func TestSSESink_Canceled_Context(t *testing.T) {
	req := require.New(t)
	rec := httptest.NewRecorder()
	sse, err := NewSSESink(rec, time.Second)
	req.NoError(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When
	err = sse.Write(ctx, []byte("{}"))

	// Then
	req.ErrorIs(err, context.Canceled)
	req.Empty(rec.Body.String())
}

func TestMemorySink_Fail(t *testing.T) {
	req := require.New(t)
	memory := NewMemorySink()
	memory.Fail = errors.ErrSinkClosed

	req.ErrorIs(memory.Write(context.Background(), []byte("{}")), errors.ErrSinkClosed)
	req.Empty(memory.Frames())
}
