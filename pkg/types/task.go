package types

// TaskStatus is the status of a segment task while scheduling.
type TaskStatus uint8

const (
	// TaskStatusUnknown means no status has been reported yet.
	TaskStatusUnknown TaskStatus = iota + 1
	// TaskStatusSuccess means the segment finished successfully.
	TaskStatusSuccess
	// TaskStatusFail means the segment failed.
	TaskStatusFail
	// TaskStatusWait means the segment was dispatched and is waiting
	// for its worker to report completion.
	TaskStatusWait
)

// String returns the status name.
func (s TaskStatus) String() string {
	switch s {
	case TaskStatusUnknown:
		return "unknown"
	case TaskStatusSuccess:
		return "success"
	case TaskStatusFail:
		return "fail"
	case TaskStatusWait:
		return "wait"
	default:
		return "invalid"
	}
}

// SegmentTask is a scheduling request for one segment within one
// query attempt. Two SegmentTasks are equal when their segment ids are
// equal.
type SegmentTask struct {
	SegmentID     SegmentID
	InstanceCount int
}

// NewSegmentTask creates a task for segment seg.
func NewSegmentTask(seg *Segment) *SegmentTask {
	return &SegmentTask{
		SegmentID:     seg.ID,
		InstanceCount: seg.InstanceCount(),
	}
}

// SegmentTaskInstance is the atomic dispatch unit: one parallel copy
// of a segment. It is comparable and usable as a map key; exactly one
// instance exists per (segment, index) per attempt.
type SegmentTaskInstance struct {
	SegmentID     SegmentID
	ParallelIndex int
}

// Hash mirrors the shifted-id hash used on the wire.
func (i SegmentTaskInstance) Hash() uint64 {
	return (uint64(i.SegmentID) << 13) + uint64(i.ParallelIndex)
}

// BatchTask is an ordered collection of segment tasks scheduled
// together in one round. It is shared between the orchestration
// goroutine and completion callbacks until the round resolves.
type BatchTask []*SegmentTask

// TaskResult is the outcome of one segment task.
type TaskResult struct {
	SegmentID SegmentID
	Status    TaskStatus
	Err       error
}

// ScheduleResult is the outcome of one scheduled batch.
type ScheduleResult struct {
	Batch []TaskResult
}

// Failed reports whether any task in the batch failed.
func (r *ScheduleResult) Failed() bool {
	for _, tr := range r.Batch {
		if tr.Status == TaskStatusFail {
			return true
		}
	}
	return false
}
