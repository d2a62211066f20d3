package scheduler

import (
	"errors"

	"distql/scheduler/pkg/types"
)

// ErrQueueStopped is returned by queue operations after the attempt
// reached a terminal state.
var ErrQueueStopped = errors.New("ready queue stopped")

// ReadyQueue is the bounded queue of ready segment tasks feeding the
// dispatcher. The bound is the pipelined strategy's backpressure
// valve: a push into a full queue blocks the producing completion
// callback until the dispatcher pops.
type ReadyQueue struct {
	ch   chan *types.SegmentTask
	stop <-chan struct{}
}

// NewReadyQueue creates a queue with the given capacity. stop unblocks
// pending pushes and pops when the attempt terminates.
func NewReadyQueue(capacity int, stop <-chan struct{}) *ReadyQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &ReadyQueue{
		ch:   make(chan *types.SegmentTask, capacity),
		stop: stop,
	}
}

// Push enqueues a task, blocking while the queue is full.
func (q *ReadyQueue) Push(task *types.SegmentTask) error {
	select {
	case q.ch <- task:
		return nil
	case <-q.stop:
		return ErrQueueStopped
	}
}

// Pop dequeues one task, blocking while the queue is empty.
func (q *ReadyQueue) Pop() (*types.SegmentTask, error) {
	select {
	case task := <-q.ch:
		return task, nil
	case <-q.stop:
		return nil, ErrQueueStopped
	}
}

// Chan exposes the receive side for select loops.
func (q *ReadyQueue) Chan() <-chan *types.SegmentTask {
	return q.ch
}

// TryPop dequeues without blocking.
func (q *ReadyQueue) TryPop() (*types.SegmentTask, bool) {
	select {
	case task := <-q.ch:
		return task, true
	default:
		return nil, false
	}
}

// Len returns the number of queued tasks.
func (q *ReadyQueue) Len() int {
	return len(q.ch)
}
