package scheduler

import (
	"context"

	"distql/scheduler/pkg/types"
)

// Strategy is one dispatch policy on top of the shared engine core.
// Both implementations consume the same ready queue and report
// completions through Engine.OnSegmentFinished; they differ only in
// when a round is considered done.
type Strategy interface {
	// Name returns the configuration name of the strategy.
	Name() string

	// ScheduleRound drains the ready queue starting from first and
	// dispatches the batch according to the policy.
	ScheduleRound(ctx context.Context, first *types.SegmentTask) error

	// SubmitTasks dispatches one batch of ready tasks.
	SubmitTasks(ctx context.Context, batch types.BatchTask) error

	// PrepareFinalTask dispatches the terminal segment after every
	// other segment has succeeded.
	PrepareFinalTask(ctx context.Context) error
}
