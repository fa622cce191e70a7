package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskQueue_PushPull(t *testing.T) {
	q := NewTaskQueue(16)
	q.Start()
	defer q.Close()

	ctx := context.Background()
	want := Envelope{Kind: TaskAnswer, ExperimentID: 7, NumLine: 3}
	require.NoError(t, q.Push(ctx, want))

	got, err := q.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestTaskQueue_ObservationEnvelopeRoundTrip(t *testing.T) {
	q := NewTaskQueue(1)
	q.Start()
	defer q.Close()

	ctx := context.Background()
	want := Envelope{
		Kind:         TaskObservation,
		ExperimentID: 1,
		NumLine:      0,
		ResultID:     9,
		MetricName:   "judge_exactness",
	}
	require.NoError(t, q.Push(ctx, want))

	got, err := q.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestTaskQueue_ArrivalOrder(t *testing.T) {
	q := NewTaskQueue(64)
	q.Start()
	defer q.Close()

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Push(ctx, Envelope{Kind: TaskAnswer, ExperimentID: 1, NumLine: i}))
	}
	for i := 0; i < 10; i++ {
		got, err := q.Pull(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, got.NumLine)
	}
}

func TestTaskQueue_CloseDeliversBuffered(t *testing.T) {
	q := NewTaskQueue(8)
	q.Start()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Push(ctx, Envelope{Kind: TaskAnswer, ExperimentID: 1, NumLine: i}))
	}
	q.Close()

	// Buffered envelopes drain after close, then pulls fail.
	for i := 0; i < 3; i++ {
		got, err := q.Pull(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, got.NumLine)
	}
	_, err := q.Pull(ctx)
	assert.ErrorIs(t, err, ErrQueueClosed)

	err = q.Push(ctx, Envelope{Kind: TaskAnswer})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestTaskQueue_CloseIsIdempotent(t *testing.T) {
	q := NewTaskQueue(1)
	q.Start()
	q.Close()
	assert.NotPanics(t, q.Close)
}

func TestTaskQueue_PullHonorsContext(t *testing.T) {
	q := NewTaskQueue(1)
	q.Start()
	defer q.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := q.Pull(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTaskQueue_ConcurrentConsumers(t *testing.T) {
	q := NewTaskQueue(128)
	q.Start()

	ctx := context.Background()
	const total = 100
	for i := 0; i < total; i++ {
		require.NoError(t, q.Push(ctx, Envelope{Kind: TaskAnswer, ExperimentID: 1, NumLine: i}))
	}
	q.Close()

	var mu sync.Mutex
	seen := make(map[int]int)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				env, err := q.Pull(ctx)
				if err != nil {
					return
				}
				mu.Lock()
				seen[env.NumLine]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Every task delivered exactly once across the pool.
	assert.Len(t, seen, total)
	for line, count := range seen {
		assert.Equal(t, 1, count, "line %d delivered %d times", line, count)
	}
}
