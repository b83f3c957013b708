package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/labsh/service/messaging"
)

type payload struct {
	Line  string
	Count int
}

func TestQueue(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx := context.Background()

	item := payload{Line: "ls", Count: 1}
	require.NoError(t, queue.Publish(ctx, &item))
	item.Count = 2
	assert.EqualValues(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, queue.Size())
	assert.EqualValues(t, payload{Line: "ls", Count: 1}, *message.T())

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())
	assert.Error(t, message.Nack(nil))
}

func TestQueue_Retries(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 2
	queue := NewQueue[payload](config)
	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, &payload{Line: "retry"}))

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		message, err := queue.Consume(ctx)
		require.NoError(t, err, attempt)
		assert.EqualValues(t, "retry", message.T().Line)
		require.NoError(t, message.Nack(nil))
	}
	assert.EqualValues(t, 0, queue.Size())
	assert.EqualValues(t, 1, queue.DLQSize())
}

func TestQueue_Full(t *testing.T) {
	queue := NewQueue[payload](Config{QueueBuffer: 2})
	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, &payload{Count: 1}))
	require.NoError(t, queue.Publish(ctx, &payload{Count: 2}))
	assert.ErrorIs(t, queue.Publish(ctx, &payload{Count: 3}), messaging.ErrQueueFull)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, queue.Publish(cancelled, &payload{}), context.Canceled)
}

func TestQueue_ConsumeTimeout(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueue_Concurrency(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, queue.Publish(ctx, &payload{Count: i}))
		}(i)
	}
	wg.Wait()

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		message, err := queue.Consume(ctx)
		require.NoError(t, err)
		seen[message.T().Count] = true
		require.NoError(t, message.Ack())
	}
	assert.Len(t, seen, 100)
}
