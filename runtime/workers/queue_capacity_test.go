package workers

import (
	"list-sync/domain"
	"list-sync/domain/event"
	"list-sync/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQueueCapacityWorker_Sample(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	counter := mocks.NewMockConnectionCounter(ctrl)
	counter.EXPECT().Count().Return(3).AnyTimes()

	queue := NewPublishQueue(log, 4, 1)
	worker := NewQueueCapacityWorker(log, queue, counter, time.Minute, 75)
	evt := event.Event{Type: event.TodoUpdated, ListID: domain.NewListID()}

	// Given a half full queue
	req.NoError(queue.Enqueue(evt, nil))
	req.NoError(queue.Enqueue(evt, nil))
	req.False(worker.Sample())

	// When it reaches the high-water mark
	req.NoError(queue.Enqueue(evt, nil))

	// Then
	req.True(worker.Sample())
}
