package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distql/scheduler/pkg/types"
)

func queueTask(id types.SegmentID) *types.SegmentTask {
	return &types.SegmentTask{SegmentID: id, InstanceCount: 1}
}

func TestReadyQueueOrder(t *testing.T) {
	stop := make(chan struct{})
	q := NewReadyQueue(4, stop)

	require.NoError(t, q.Push(queueTask(1)))
	require.NoError(t, q.Push(queueTask(2)))
	require.NoError(t, q.Push(queueTask(3)))

	for _, want := range []types.SegmentID{1, 2, 3} {
		task, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, task.SegmentID)
	}
}

func TestReadyQueueTryPopEmpty(t *testing.T) {
	q := NewReadyQueue(4, make(chan struct{}))
	task, ok := q.TryPop()
	assert.False(t, ok)
	assert.Nil(t, task)
}

func TestReadyQueuePushBlocksUntilPop(t *testing.T) {
	stop := make(chan struct{})
	q := NewReadyQueue(1, stop)
	require.NoError(t, q.Push(queueTask(1)))

	pushed := make(chan struct{})
	go func() {
		_ = q.Push(queueTask(2))
		close(pushed)
	}()

	select {
	case <-pushed:
		t.Fatal("push into a full queue must block")
	case <-time.After(50 * time.Millisecond):
	}

	task, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, types.SegmentID(1), task.SegmentID)

	select {
	case <-pushed:
	case <-time.After(time.Second):
		t.Fatal("push did not resume after pop")
	}
}

func TestReadyQueueStopUnblocks(t *testing.T) {
	stop := make(chan struct{})
	q := NewReadyQueue(1, stop)
	require.NoError(t, q.Push(queueTask(1)))

	pushErr := make(chan error, 1)
	popErr := make(chan error, 1)
	go func() {
		pushErr <- q.Push(queueTask(2))
	}()
	drained := NewReadyQueue(1, stop)
	go func() {
		_, err := drained.Pop()
		popErr <- err
	}()

	close(stop)

	assert.ErrorIs(t, <-pushErr, ErrQueueStopped)
	assert.ErrorIs(t, <-popErr, ErrQueueStopped)
}

func TestReadyQueueCapacityClamped(t *testing.T) {
	q := NewReadyQueue(0, make(chan struct{}))
	require.NoError(t, q.Push(queueTask(1)))
	assert.Equal(t, 1, q.Len())
}
