package dispatch

import (
	"context"
	"time"

	"distql/scheduler/pkg/types"
)

// ResourceRequest ships segment metadata and state to a worker ahead
// of execution submission.
type ResourceRequest struct {
	// AttemptID correlates all calls of one query attempt.
	AttemptID string
	// PrimaryTxnID is an opaque correlation field carried on the wire
	// contract; the scheduler assigns it and never reads it back.
	PrimaryTxnID string
	// CreateQueries are the table definitions the worker needs before
	// it can execute segments of this attempt.
	CreateQueries []string
	// TimeoutSeconds bounds worker-side session cleanup.
	TimeoutSeconds int64
}

// SubmitRequest submits one segment instance for execution.
type SubmitRequest struct {
	TaskID       string
	AttemptID    string
	PrimaryTxnID string
	// CallbackPort is the RPC port the worker reports progress to.
	// Zero is a configuration error, rejected before any RPC.
	CallbackPort  int
	SegmentID     types.SegmentID
	ParallelIndex int
	ParallelSize  int
	Payload       []byte
}

// Instance identifies the dispatch unit of the request.
func (r *SubmitRequest) Instance() types.SegmentTaskInstance {
	return types.SegmentTaskInstance{SegmentID: r.SegmentID, ParallelIndex: r.ParallelIndex}
}

// WorkerClient is the per-worker execution endpoint consumed by the
// Dispatcher. Synchronous operations return once the response has been
// validated; asynchronous operations return a cancellable handle
// immediately and deliver completion through the handle's callback.
type WorkerClient interface {
	// Address returns the worker's dial address.
	Address() string

	// SendResources pushes resources synchronously.
	SendResources(ctx context.Context, req *ResourceRequest) error

	// SendResourcesAsync pushes resources asynchronously. callback
	// runs exactly once with the validated outcome.
	SendResourcesAsync(req *ResourceRequest, timeout time.Duration, callback func(error)) *AsyncCall

	// SubmitPlanSegment submits one segment instance asynchronously.
	SubmitPlanSegment(req *SubmitRequest, timeout time.Duration, callback func(error)) *AsyncCall

	// GetTaskStatus returns a status snapshot without side effects.
	GetTaskStatus(ctx context.Context, attemptID string, instances []types.SegmentTaskInstance) (map[types.SegmentTaskInstance]types.TaskStatus, error)

	// CancelTasks cancels the given instances. Best-effort and
	// idempotent.
	CancelTasks(ctx context.Context, attemptID string, instances []types.SegmentTaskInstance) error

	// RemoveAttemptResource removes attempt-scoped state on the
	// worker. Best-effort cleanup; failure is logged, not fatal.
	RemoveAttemptResource(attemptID string, timeout time.Duration, callback func(error)) *AsyncCall

	// SendOffloadingInfo exists in the wire contract but has no
	// defined semantics; it returns types.ErrUnsupportedOperation.
	SendOffloadingInfo(ctx context.Context) error
}

// ClientPool hands out worker clients by node. Implementations cache
// connections per address.
type ClientPool interface {
	// ClientFor returns the client for a node.
	ClientFor(node types.WorkerNode) (WorkerClient, error)

	// Close releases all pooled connections.
	Close() error
}
