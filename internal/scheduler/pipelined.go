package scheduler

import (
	"context"
	"time"

	"distql/scheduler/pkg/logger"
	"distql/scheduler/pkg/types"
)

// Pipelined dispatches every popped segment without waiting for its
// completion. Graph advancement happens on transport callback
// goroutines, so independent branches of the plan overlap; the
// bounded ready queue is the backpressure valve between completion
// callbacks and dispatch.
type Pipelined struct {
	engine *Engine
}

func (p *Pipelined) Name() string { return StrategyPipelined }

func (p *Pipelined) ScheduleRound(ctx context.Context, first *types.SegmentTask) error {
	return p.SubmitTasks(ctx, p.engine.drainBatch(first))
}

func (p *Pipelined) SubmitTasks(ctx context.Context, batch types.BatchTask) error {
	e := p.engine
	start := time.Now()
	defer func() { e.metrics.RecordRound(time.Since(start)) }()

	placed := e.placeBatch(batch)
	if len(placed) == 0 {
		return e.errSlot.Get()
	}
	// Resources go out through the asynchronous client path; the round
	// proceeds once every push has resolved.
	if err := e.dispatcher.PrepareWorkersAsync(ctx, roundWorkers(placed)); err != nil {
		e.failRound(placed, err)
		return e.errSlot.Get()
	}

	for _, pt := range placed {
		if e.cancelled.Load() {
			break
		}
		e.setStatus(pt.task.SegmentID, types.TaskStatusWait)
		e.recordDispatch(pt.seg, pt.pl)
		e.beginSegment(pt.task.SegmentID, pt.task.InstanceCount)
		if _, err := e.dispatcher.DispatchAsync(ctx, pt.seg, pt.pl, e.onInstanceDone); err != nil {
			// Issued instances report through the callback; the
			// segment itself is already failed.
			e.setStatus(pt.task.SegmentID, types.TaskStatusFail)
			e.fail(err)
			break
		}
		logger.Debug("attempt %s: segment %d in flight, %d instances",
			e.attemptID, pt.task.SegmentID, pt.task.InstanceCount)
	}
	return e.errSlot.Get()
}

func (p *Pipelined) PrepareFinalTask(ctx context.Context) error {
	return p.engine.prepareFinalTask(ctx)
}
