package scheduler

import (
	"context"
	"time"

	"distql/scheduler/internal/dispatch"
	"distql/scheduler/pkg/logger"
	"distql/scheduler/pkg/types"
)

// Sequential dispatches one ready layer at a time and waits for every
// instance in the layer to resolve before advancing the graph. Graph
// advancement runs on the orchestration goroutine, so completion
// ordering within a round is deterministic.
type Sequential struct {
	engine *Engine
}

func (s *Sequential) Name() string { return StrategySequential }

func (s *Sequential) ScheduleRound(ctx context.Context, first *types.SegmentTask) error {
	return s.SubmitTasks(ctx, s.engine.drainBatch(first))
}

func (s *Sequential) SubmitTasks(ctx context.Context, batch types.BatchTask) error {
	e := s.engine
	start := time.Now()
	defer func() { e.metrics.RecordRound(time.Since(start)) }()

	placed := e.placeBatch(batch)
	if len(placed) == 0 {
		return e.errSlot.Get()
	}
	if err := e.dispatcher.PrepareWorkers(ctx, roundWorkers(placed)); err != nil {
		e.failRound(placed, err)
		return e.errSlot.Get()
	}

	type pendingTask struct {
		task  *types.SegmentTask
		calls []*dispatch.AsyncCall
		err   error
	}
	pending := make([]pendingTask, 0, len(placed))

	for _, p := range placed {
		if e.cancelled.Load() {
			break
		}
		e.setStatus(p.task.SegmentID, types.TaskStatusWait)
		e.recordDispatch(p.seg, p.pl)
		calls, err := e.dispatcher.DispatchAsync(ctx, p.seg, p.pl, nil)
		if err != nil {
			// Issued instances keep running and drain below.
			e.fail(err)
			pending = append(pending, pendingTask{task: p.task, calls: calls, err: err})
			break
		}
		pending = append(pending, pendingTask{task: p.task, calls: calls})
		logger.Debug("attempt %s: segment %d submitted, %d instances",
			e.attemptID, p.task.SegmentID, p.task.InstanceCount)
	}

	for _, p := range pending {
		err := dispatch.WaitAll(ctx, p.calls)
		if p.err != nil {
			err = p.err
		}
		e.OnSegmentFinished(p.task.SegmentID, err)
	}
	return e.errSlot.Get()
}

func (s *Sequential) PrepareFinalTask(ctx context.Context) error {
	return s.engine.prepareFinalTask(ctx)
}
