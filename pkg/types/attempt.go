package types

import "time"

// AttemptState is the state machine of one scheduling attempt.
// Terminal states are mutually exclusive and sticky.
type AttemptState string

const (
	// AttemptStateIdle means the attempt has not started.
	AttemptStateIdle AttemptState = "idle"
	// AttemptStateRunning means segments are being dispatched.
	AttemptStateRunning AttemptState = "running"
	// AttemptStateSucceeded means the final segment completed.
	AttemptStateSucceeded AttemptState = "succeeded"
	// AttemptStateFailed means a segment or RPC failed.
	AttemptStateFailed AttemptState = "failed"
	// AttemptStateExpired means the deadline passed with pending work.
	AttemptStateExpired AttemptState = "expired"
)

// Terminal reports whether the state is final.
func (s AttemptState) Terminal() bool {
	switch s {
	case AttemptStateSucceeded, AttemptStateFailed, AttemptStateExpired:
		return true
	default:
		return false
	}
}

// FinalSegmentExecution describes where the final segment ran; it is
// what the caller needs to collect the query's overall result.
type FinalSegmentExecution struct {
	SegmentID     SegmentID
	Worker        WorkerNode
	ParallelIndex int
}

// ScheduleOutcome is the terminal result of one attempt.
type ScheduleOutcome struct {
	QueryID   string
	AttemptID string
	State     AttemptState
	// Err is the single attributable error for Failed and Expired
	// attempts; nil when Succeeded.
	Err error
	// Final is set when the final segment was dispatched.
	Final *FinalSegmentExecution
	// SegmentStatus is the last observed status per segment.
	SegmentStatus map[SegmentID]TaskStatus
	// Results carries the per-segment task results, ordered by
	// segment id.
	Results   ScheduleResult
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns the attempt's wall-clock duration.
func (o *ScheduleOutcome) Duration() time.Duration {
	return o.EndTime.Sub(o.StartTime)
}
