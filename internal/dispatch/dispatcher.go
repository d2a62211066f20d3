package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"distql/scheduler/internal/metrics"
	"distql/scheduler/pkg/logger"
	"distql/scheduler/pkg/types"
)

// Config carries the per-attempt dispatch parameters.
type Config struct {
	QueryID      string
	AttemptID    string
	PrimaryTxnID string

	// CallbackPort is the port workers report progress to. Must be
	// set before any remote dispatch.
	CallbackPort int

	// SendTimeout is the per-call ceiling; the effective timeout of
	// every call is min(SendTimeout, time remaining until Deadline).
	SendTimeout time.Duration

	// Deadline is the attempt's absolute deadline.
	Deadline time.Time

	// CreateQueries are shipped to each worker before submission.
	CreateQueries []string
}

// Dispatcher turns ready segment tasks into worker RPC calls: a
// resource push per worker followed by one execution submission per
// segment instance.
type Dispatcher struct {
	cfg     Config
	pool    ClientPool
	metrics *metrics.ScheduleMetrics

	// resourcesSent remembers which workers already received this
	// attempt's resources, so each worker is prepared once.
	resourcesSent map[string]bool
}

// NewDispatcher creates a dispatcher for one attempt.
func NewDispatcher(cfg Config, pool ClientPool, m *metrics.ScheduleMetrics) *Dispatcher {
	return &Dispatcher{
		cfg:           cfg,
		pool:          pool,
		metrics:       m,
		resourcesSent: make(map[string]bool),
	}
}

// ValidateConfig rejects dispatch configurations that must never reach
// the wire. A missing callback port is a configuration error, not a
// runtime one.
func (d *Dispatcher) ValidateConfig() error {
	if d.cfg.CallbackPort == 0 {
		return types.NewConfigurationError("callback_port", "not set; workers cannot report progress")
	}
	if d.cfg.AttemptID == "" {
		return types.NewConfigurationError("attempt_id", "not set; calls cannot be correlated")
	}
	return nil
}

// SetDeadline tightens the attempt deadline. Must be called before the
// first dispatch.
func (d *Dispatcher) SetDeadline(deadline time.Time) {
	d.cfg.Deadline = deadline
}

// CallTimeout derives the effective timeout for a call issued now.
// A zero or negative remainder means the deadline has passed.
func (d *Dispatcher) CallTimeout(now time.Time) (time.Duration, error) {
	remaining := d.cfg.Deadline.Sub(now)
	if remaining <= 0 {
		return 0, types.NewDeadlineExceededError(d.cfg.Deadline, 0)
	}
	if d.cfg.SendTimeout > 0 && d.cfg.SendTimeout < remaining {
		return d.cfg.SendTimeout, nil
	}
	return remaining, nil
}

// submitRequest builds the wire request for one instance.
func (d *Dispatcher) submitRequest(segment *types.Segment, parallelIndex, parallelSize int) *SubmitRequest {
	return &SubmitRequest{
		TaskID:        fmt.Sprintf("%s-%d-%d", d.cfg.AttemptID, segment.ID, parallelIndex),
		AttemptID:     d.cfg.AttemptID,
		PrimaryTxnID:  d.cfg.PrimaryTxnID,
		CallbackPort:  d.cfg.CallbackPort,
		SegmentID:     segment.ID,
		ParallelIndex: parallelIndex,
		ParallelSize:  parallelSize,
		Payload:       segment.Payload,
	}
}

// resourceRequest builds the attempt's resource push payload.
func (d *Dispatcher) resourceRequest() *ResourceRequest {
	return &ResourceRequest{
		AttemptID:      d.cfg.AttemptID,
		PrimaryTxnID:   d.cfg.PrimaryTxnID,
		CreateQueries:  d.cfg.CreateQueries,
		TimeoutSeconds: int64(time.Until(d.cfg.Deadline) / time.Second),
	}
}

// prepareWorker pushes the attempt's resources to a worker once.
// Resource-push failure is treated identically to execution failure.
func (d *Dispatcher) prepareWorker(ctx context.Context, client WorkerClient, node types.WorkerNode) error {
	if d.resourcesSent[node.Address] {
		return nil
	}
	timeout, err := d.CallTimeout(time.Now())
	if err != nil {
		return err
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.SendResources(callCtx, d.resourceRequest()); err != nil {
		return err
	}
	d.resourcesSent[node.Address] = true
	return nil
}

// DispatchSync dispatches every instance of the segment and blocks
// until all submissions resolve. Used by the sequential strategy.
func (d *Dispatcher) DispatchSync(ctx context.Context, segment *types.Segment, placement types.Placement) error {
	if err := d.ValidateConfig(); err != nil {
		return err
	}

	instances := segment.InstanceCount()
	calls := make([]*AsyncCall, 0, instances)
	for i := 0; i < instances; i++ {
		call, err := d.dispatchInstance(ctx, segment, placement, i, nil)
		if err != nil {
			return err
		}
		calls = append(calls, call)
	}
	return WaitAll(ctx, calls)
}

// DispatchAsync dispatches every instance of the segment without
// waiting. onInstance runs once per instance from the completion
// goroutine. Used by the pipelined strategy.
func (d *Dispatcher) DispatchAsync(ctx context.Context, segment *types.Segment, placement types.Placement,
	onInstance func(inst types.SegmentTaskInstance, err error)) ([]*AsyncCall, error) {
	if err := d.ValidateConfig(); err != nil {
		return nil, err
	}

	instances := segment.InstanceCount()
	calls := make([]*AsyncCall, 0, instances)
	for i := 0; i < instances; i++ {
		call, err := d.dispatchInstance(ctx, segment, placement, i, onInstance)
		if err != nil {
			// Already-issued calls keep running; the caller records
			// the error and lets them drain.
			return calls, err
		}
		calls = append(calls, call)
	}
	return calls, nil
}

// dispatchInstance prepares the target worker and submits one
// instance. Local placements are accepted in-process without RPC.
func (d *Dispatcher) dispatchInstance(ctx context.Context, segment *types.Segment, placement types.Placement,
	parallelIndex int, onInstance func(types.SegmentTaskInstance, error)) (*AsyncCall, error) {

	node := placement.WorkerFor(parallelIndex)
	inst := types.SegmentTaskInstance{SegmentID: segment.ID, ParallelIndex: parallelIndex}

	if node.IsLocal() {
		logger.Debug("segment %d instance %d accepted in-process", segment.ID, parallelIndex)
		call := NewAsyncCall("SubmitPlanSegment", wrapInstanceCallback(inst, onInstance))
		// Resolve off the caller's goroutine, like the real transport:
		// completion callbacks push into the ready queue and must never
		// run on the goroutine that consumes it.
		go call.Complete(nil)
		return call, nil
	}

	client, err := d.pool.ClientFor(node)
	if err != nil {
		return nil, types.NewTransportError("ClientFor", node.Address, err)
	}
	if err := d.prepareWorker(ctx, client, node); err != nil {
		return nil, err
	}
	timeout, err := d.CallTimeout(time.Now())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	req := d.submitRequest(segment, parallelIndex, segment.InstanceCount())
	cb := wrapInstanceCallback(inst, onInstance)
	call := client.SubmitPlanSegment(req, timeout, func(err error) {
		if d.metrics != nil {
			d.metrics.RecordDispatch(time.Since(start), err != nil)
		}
		cb(err)
	})
	return call, nil
}

// PrepareWorkers pushes resources to every unprepared worker in nodes
// concurrently and blocks until all pushes resolve. The sequential
// strategy runs it before each round so submissions find prepared
// workers.
func (d *Dispatcher) PrepareWorkers(ctx context.Context, nodes []types.WorkerNode) error {
	pending := d.unprepared(nodes)
	g, gctx := errgroup.WithContext(ctx)
	for _, node := range pending {
		client, err := d.pool.ClientFor(node)
		if err != nil {
			return types.NewTransportError("ClientFor", node.Address, err)
		}
		g.Go(func() error {
			timeout, err := d.CallTimeout(time.Now())
			if err != nil {
				return err
			}
			callCtx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()
			return client.SendResources(callCtx, d.resourceRequest())
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	d.markPrepared(pending)
	return nil
}

// PrepareWorkersAsync issues the resource pushes through the
// asynchronous client path and waits for the whole batch to resolve.
// The pipelined strategy runs it before each round.
func (d *Dispatcher) PrepareWorkersAsync(ctx context.Context, nodes []types.WorkerNode) error {
	pending := d.unprepared(nodes)
	calls := make([]*AsyncCall, 0, len(pending))
	for _, node := range pending {
		client, err := d.pool.ClientFor(node)
		if err != nil {
			return types.NewTransportError("ClientFor", node.Address, err)
		}
		timeout, err := d.CallTimeout(time.Now())
		if err != nil {
			return err
		}
		calls = append(calls, client.SendResourcesAsync(d.resourceRequest(), timeout, nil))
	}
	if err := WaitAll(ctx, calls); err != nil {
		return err
	}
	d.markPrepared(pending)
	return nil
}

// unprepared filters nodes down to the remote workers that have not
// received this attempt's resources yet.
func (d *Dispatcher) unprepared(nodes []types.WorkerNode) []types.WorkerNode {
	pending := make([]types.WorkerNode, 0, len(nodes))
	for _, node := range nodes {
		if node.IsLocal() || d.resourcesSent[node.Address] {
			continue
		}
		pending = append(pending, node)
	}
	return pending
}

// markPrepared records a successful resource push per worker. A failed
// push leaves the worker unprepared so a later round retries it.
func (d *Dispatcher) markPrepared(nodes []types.WorkerNode) {
	for _, node := range nodes {
		d.resourcesSent[node.Address] = true
	}
}

// Cleanup best-effort cancels outstanding tasks and removes
// attempt-scoped state on every worker that received work. Failures
// are logged, never fatal.
func (d *Dispatcher) Cleanup(ctx context.Context, nodes []types.WorkerNode, instances []types.SegmentTaskInstance) {
	timeout := d.cfg.SendTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	for _, node := range nodes {
		if node.IsLocal() || !d.resourcesSent[node.Address] {
			continue
		}
		client, err := d.pool.ClientFor(node)
		if err != nil {
			logger.Warn("cleanup: no client for %s: %v", node.Address, err)
			continue
		}
		if len(instances) > 0 {
			cancelCtx, cancel := context.WithTimeout(ctx, timeout)
			if err := client.CancelTasks(cancelCtx, d.cfg.AttemptID, instances); err != nil {
				logger.Warn("cleanup: cancel tasks on %s: %v", node.Address, err)
			}
			cancel()
		}
		addr := node.Address
		client.RemoveAttemptResource(d.cfg.AttemptID, timeout, func(err error) {
			if err != nil {
				logger.Warn("cleanup: remove attempt state on %s: %v", addr, err)
			}
		})
	}
}

func wrapInstanceCallback(inst types.SegmentTaskInstance, onInstance func(types.SegmentTaskInstance, error)) func(error) {
	if onInstance == nil {
		return func(error) {}
	}
	return func(err error) {
		onInstance(inst, err)
	}
}
