package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"distql/scheduler/internal/dispatch"
	"distql/scheduler/internal/metrics"
	"distql/scheduler/internal/placement"
	"distql/scheduler/internal/topology"
	"distql/scheduler/pkg/logger"
	"distql/scheduler/pkg/types"
)

// ErrAttemptCancelled is recorded when an attempt is cancelled from
// the outside rather than by a segment failure.
var ErrAttemptCancelled = errors.New("attempt cancelled")

// Strategy names recognized in configuration.
const (
	StrategySequential = "sequential"
	StrategyPipelined  = "pipelined"
)

// Options configures one scheduling attempt.
type Options struct {
	QueryID   string
	AttemptID string

	Graph   *types.PlanGraph
	Workers []types.WorkerNode
	// LocalAddress is the coordinator's own address, added to the
	// cluster as the synthetic local entry.
	LocalAddress string

	Pool dispatch.ClientPool
	// Selector overrides the default round-robin node selector.
	Selector placement.NodeSelector

	Strategy           string
	MaxExecutionTime   time.Duration
	RPCSendTimeout     time.Duration
	ReadyQueueCapacity int
	CallbackPort       int

	PrimaryTxnID  string
	CreateQueries []string

	Metrics *metrics.ScheduleMetrics
}

// Engine is the dependency-tracking core shared by both scheduling
// strategies. One Engine instance serves exactly one query attempt and
// is discarded afterwards.
type Engine struct {
	queryID   string
	attemptID string

	graph      *types.PlanGraph
	topo       *topology.Index
	cache      *placement.Cache
	nodes      types.ClusterNodes
	dispatcher *dispatch.Dispatcher
	queue      *ReadyQueue
	strategy   Strategy
	metrics    *metrics.ScheduleMetrics

	deadline time.Time

	// stopCh is closed exactly once when the attempt reaches a
	// terminal condition; it unblocks queue producers and consumers.
	stopCh   chan struct{}
	stopOnce sync.Once
	// finalReady signals that every non-final segment has succeeded.
	finalReady chan struct{}

	cancelled atomic.Bool
	errSlot   dispatch.ErrorSlot

	// remainingNonFinal counts unfinished non-final segments.
	remainingNonFinal atomic.Int64

	stateMu   sync.RWMutex
	state     types.AttemptState
	statuses  map[types.SegmentID]types.TaskStatus
	finalExec *types.FinalSegmentExecution
	startTime time.Time
	endTime   time.Time

	// instMu guards per-segment in-flight instance accounting used by
	// the pipelined strategy's completion callbacks.
	instMu           sync.Mutex
	pendingInstances map[types.SegmentID]int
	segmentErr       map[types.SegmentID]error

	// dispatchMu guards the record of workers and instances that
	// actually received work, used for best-effort cleanup.
	dispatchMu          sync.Mutex
	dispatchedNodes     map[string]types.WorkerNode
	dispatchedInstances []types.SegmentTaskInstance
}

// New creates the engine for one attempt. Topology and placement
// cache are built here and live until the engine is discarded.
func New(opts Options) (*Engine, error) {
	if opts.Graph == nil {
		return nil, fmt.Errorf("plan graph cannot be nil")
	}
	if opts.Pool == nil {
		return nil, fmt.Errorf("client pool cannot be nil")
	}
	if opts.MaxExecutionTime <= 0 {
		opts.MaxExecutionTime = 60 * time.Second
	}
	if opts.Strategy == "" {
		opts.Strategy = StrategySequential
	}

	nodes := types.NewClusterNodes(opts.Workers)
	if opts.LocalAddress != "" {
		nodes.AddLocal(opts.LocalAddress)
	}
	selector := opts.Selector
	if selector == nil {
		selector = placement.NewRoundRobinSelector(nodes)
	}

	e := &Engine{
		queryID:          opts.QueryID,
		attemptID:        opts.AttemptID,
		graph:            opts.Graph,
		topo:             topology.Build(opts.Graph),
		cache:            placement.NewCache(selector),
		nodes:            nodes,
		metrics:          opts.Metrics,
		deadline:         time.Now().Add(opts.MaxExecutionTime),
		stopCh:           make(chan struct{}),
		finalReady:       make(chan struct{}, 1),
		state:            types.AttemptStateIdle,
		statuses:         make(map[types.SegmentID]types.TaskStatus, opts.Graph.Len()),
		pendingInstances: make(map[types.SegmentID]int),
		segmentErr:       make(map[types.SegmentID]error),
		dispatchedNodes:  make(map[string]types.WorkerNode),
	}
	if e.metrics == nil {
		e.metrics = metrics.NewScheduleMetrics()
	}
	for _, id := range opts.Graph.SegmentIDs() {
		e.statuses[id] = types.TaskStatusUnknown
	}
	e.remainingNonFinal.Store(int64(opts.Graph.Len() - 1))

	capacity := opts.ReadyQueueCapacity
	if capacity <= 0 {
		capacity = 64
	}
	if opts.Strategy == StrategySequential && capacity < opts.Graph.Len() {
		// The sequential strategy enqueues a whole layer from the
		// orchestration goroutine before popping again; the queue
		// must hold it.
		capacity = opts.Graph.Len()
	}
	e.queue = NewReadyQueue(capacity, e.stopCh)

	e.dispatcher = dispatch.NewDispatcher(dispatch.Config{
		QueryID:       opts.QueryID,
		AttemptID:     opts.AttemptID,
		PrimaryTxnID:  opts.PrimaryTxnID,
		CallbackPort:  opts.CallbackPort,
		SendTimeout:   opts.RPCSendTimeout,
		Deadline:      e.deadline,
		CreateQueries: opts.CreateQueries,
	}, opts.Pool, e.metrics)

	switch opts.Strategy {
	case StrategySequential:
		e.strategy = &Sequential{engine: e}
	case StrategyPipelined:
		e.strategy = &Pipelined{engine: e}
	default:
		return nil, types.NewConfigurationError("strategy",
			fmt.Sprintf("unknown strategy %q", opts.Strategy))
	}
	return e, nil
}

// Deadline returns the attempt's absolute deadline.
func (e *Engine) Deadline() time.Time {
	return e.deadline
}

// QueryID returns the query this attempt belongs to.
func (e *Engine) QueryID() string { return e.queryID }

// AttemptID returns the attempt identifier.
func (e *Engine) AttemptID() string { return e.attemptID }

// State returns the current attempt state.
func (e *Engine) State() types.AttemptState {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.state
}

// SegmentStatuses returns a copy of the per-segment statuses.
func (e *Engine) SegmentStatuses() map[types.SegmentID]types.TaskStatus {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	out := make(map[types.SegmentID]types.TaskStatus, len(e.statuses))
	for id, st := range e.statuses {
		out[id] = st
	}
	return out
}

// Err returns the attributable error recorded so far, or nil.
func (e *Engine) Err() error {
	return e.errSlot.Get()
}

// Metrics returns the attempt's metrics recorder.
func (e *Engine) Metrics() *metrics.ScheduleMetrics {
	return e.metrics
}

// Cancel trips the attempt's cancellation from the outside.
func (e *Engine) Cancel() {
	e.fail(ErrAttemptCancelled)
}

// Schedule runs the attempt to its terminal state. It must be called
// at most once.
func (e *Engine) Schedule(ctx context.Context) (*types.ScheduleOutcome, error) {
	e.stateMu.Lock()
	if e.state != types.AttemptStateIdle {
		e.stateMu.Unlock()
		return nil, fmt.Errorf("attempt %s already scheduled", e.attemptID)
	}
	e.state = types.AttemptStateRunning
	e.startTime = time.Now()
	e.stateMu.Unlock()

	// The effective deadline is the earlier of the configured limit
	// and whatever deadline the caller's context carries.
	if dl, ok := ctx.Deadline(); ok && dl.Before(e.deadline) {
		e.deadline = dl
		e.dispatcher.SetDeadline(dl)
	}

	logger.Info("attempt %s: scheduling %d segments with %s strategy, deadline %s",
		e.attemptID, e.graph.Len(), e.strategy.Name(), e.deadline.Format(time.RFC3339))

	e.seedReady()

	finalDone := false
loop:
	for {
		remaining := time.Until(e.deadline)
		if remaining <= 0 {
			e.expire()
			break
		}
		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				e.expire()
			} else {
				e.fail(ctx.Err())
			}
			break loop
		case <-timer.C:
			e.expire()
			break loop
		case <-e.stopCh:
			timer.Stop()
			break loop
		case <-e.finalReady:
			timer.Stop()
			if err := e.strategy.PrepareFinalTask(ctx); err != nil {
				e.fail(err)
			} else {
				finalDone = true
			}
			break loop
		case task := <-e.queue.Chan():
			timer.Stop()
			if err := e.strategy.ScheduleRound(ctx, task); err != nil {
				e.fail(err)
				break loop
			}
		}
	}

	e.closeStop()
	e.stateMu.Lock()
	e.endTime = time.Now()
	switch {
	case finalDone && e.errSlot.Get() == nil:
		e.state = types.AttemptStateSucceeded
	case types.IsDeadlineExceeded(e.errSlot.Get()):
		e.state = types.AttemptStateExpired
	default:
		e.state = types.AttemptStateFailed
		if e.errSlot.Get() == nil {
			// Queue stopped without a recorded cause.
			e.errSlot.Set(ErrAttemptCancelled)
		}
	}
	terminal := e.state
	e.stateMu.Unlock()

	e.metrics.RecordSuppressedErrors(e.errSlot.Suppressed())
	e.cleanup(terminal)

	outcome := e.outcome(terminal)
	if terminal == types.AttemptStateSucceeded {
		logger.Info("attempt %s: succeeded in %s", e.attemptID, outcome.Duration())
		return outcome, nil
	}
	logger.Warn("attempt %s: %s: %v", e.attemptID, terminal, outcome.Err)
	return outcome, outcome.Err
}

// seedReady enqueues the zero-dependency segments. Pushes run on
// their own goroutine so a queue narrower than the first layer does
// not deadlock the orchestrator before its first pop.
func (e *Engine) seedReady() {
	initial := e.topo.InitialReady()
	finalID := e.graph.FinalSegmentID()
	go func() {
		for _, id := range initial {
			if id == finalID {
				continue
			}
			if err := e.queue.Push(types.NewSegmentTask(e.graph.Segment(id))); err != nil {
				return
			}
		}
	}()
	if e.remainingNonFinal.Load() == 0 {
		e.finalReady <- struct{}{}
	}
}

// OnSegmentFinished advances the graph after a segment resolves. On
// success it releases consumers whose last dependency this was; on
// failure it trips cancellation with the first reported error. Safe
// to call from RPC callback goroutines.
func (e *Engine) OnSegmentFinished(id types.SegmentID, err error) {
	if err != nil {
		e.setStatus(id, types.TaskStatusFail)
		e.instMu.Lock()
		if e.segmentErr[id] == nil {
			e.segmentErr[id] = err
		}
		e.instMu.Unlock()
		logger.Warn("attempt %s: segment %d failed: %v", e.attemptID, id, err)
		e.fail(err)
		return
	}

	e.setStatus(id, types.TaskStatusSuccess)
	if e.cancelled.Load() {
		// Drained completion after cancellation: no graph advancement.
		return
	}

	finalID := e.graph.FinalSegmentID()
	for _, ready := range e.topo.DecrementDependency(id) {
		if ready == finalID {
			// The final segment goes through the dedicated path once
			// everything else has finished.
			continue
		}
		if err := e.queue.Push(types.NewSegmentTask(e.graph.Segment(ready))); err != nil {
			return
		}
	}

	if id != finalID && e.remainingNonFinal.Add(-1) == 0 {
		select {
		case e.finalReady <- struct{}{}:
		default:
		}
	}
}

// beginSegment registers in-flight instance accounting before an
// asynchronous dispatch.
func (e *Engine) beginSegment(id types.SegmentID, instances int) {
	e.instMu.Lock()
	e.pendingInstances[id] = instances
	e.instMu.Unlock()
}

// onInstanceDone is the per-instance completion callback of the
// pipelined strategy. It runs on transport goroutines.
func (e *Engine) onInstanceDone(inst types.SegmentTaskInstance, err error) {
	e.instMu.Lock()
	if err != nil && e.segmentErr[inst.SegmentID] == nil {
		e.segmentErr[inst.SegmentID] = err
	}
	e.pendingInstances[inst.SegmentID]--
	finished := e.pendingInstances[inst.SegmentID] == 0
	segErr := e.segmentErr[inst.SegmentID]
	e.instMu.Unlock()

	if finished {
		e.OnSegmentFinished(inst.SegmentID, segErr)
	}
}

// selectNodes resolves the memoized placement for a segment.
func (e *Engine) selectNodes(seg *types.Segment) (types.Placement, error) {
	return e.cache.SelectNodes(seg)
}

// recordDispatch remembers which workers received which instances.
func (e *Engine) recordDispatch(seg *types.Segment, pl types.Placement) {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()
	for i := 0; i < seg.InstanceCount(); i++ {
		node := pl.WorkerFor(i)
		if !node.IsLocal() {
			e.dispatchedNodes[node.Address] = node
		}
		e.dispatchedInstances = append(e.dispatchedInstances,
			types.SegmentTaskInstance{SegmentID: seg.ID, ParallelIndex: i})
	}
}

// drainBatch forms a round: the first popped task plus everything
// already sitting in the queue.
func (e *Engine) drainBatch(first *types.SegmentTask) types.BatchTask {
	batch := types.BatchTask{first}
	for {
		task, ok := e.queue.TryPop()
		if !ok {
			return batch
		}
		batch = append(batch, task)
	}
}

// placedTask is one round entry with its resolved placement.
type placedTask struct {
	task *types.SegmentTask
	seg  *types.Segment
	pl   types.Placement
}

// placeBatch resolves the memoized placement of every task in the
// round. Placement stops at a cancellation, deadline violation or
// placement failure; tasks past that point are not placed.
func (e *Engine) placeBatch(batch types.BatchTask) []placedTask {
	placed := make([]placedTask, 0, len(batch))
	for _, task := range batch {
		if e.cancelled.Load() {
			break
		}
		if err := e.checkDeadline(); err != nil {
			e.fail(err)
			break
		}
		seg := e.graph.Segment(task.SegmentID)
		pl, err := e.selectNodes(seg)
		if err != nil {
			e.setStatus(task.SegmentID, types.TaskStatusFail)
			e.fail(err)
			break
		}
		placed = append(placed, placedTask{task: task, seg: seg, pl: pl})
	}
	return placed
}

// failRound marks every placed-but-undispatched task failed. Used when
// the round's resource push fails before any submission went out.
func (e *Engine) failRound(placed []placedTask, err error) {
	for _, p := range placed {
		e.setStatus(p.task.SegmentID, types.TaskStatusFail)
	}
	e.fail(err)
}

// roundWorkers returns the distinct remote workers a placed round will
// touch, for the per-round resource push.
func roundWorkers(placed []placedTask) []types.WorkerNode {
	seen := make(map[string]types.WorkerNode)
	for _, p := range placed {
		for i := 0; i < p.seg.InstanceCount(); i++ {
			node := p.pl.WorkerFor(i)
			if !node.IsLocal() {
				seen[node.Address] = node
			}
		}
	}
	nodes := make([]types.WorkerNode, 0, len(seen))
	for _, node := range seen {
		nodes = append(nodes, node)
	}
	return nodes
}

// prepareFinalTask dispatches the terminal segment. It runs on the
// coordinator's local entry when one exists, since it aggregates the
// query's overall result.
func (e *Engine) prepareFinalTask(ctx context.Context) error {
	if e.cancelled.Load() {
		return e.errSlot.Get()
	}
	if err := e.checkDeadline(); err != nil {
		return err
	}

	final := e.graph.Segment(e.graph.FinalSegmentID())
	var pl types.Placement
	if local, ok := e.nodes.Local(); ok {
		pl = types.Placement{SegmentID: final.ID, Workers: []types.WorkerNode{local}}
	} else {
		var err error
		pl, err = e.selectNodes(final)
		if err != nil {
			return err
		}
	}

	e.setStatus(final.ID, types.TaskStatusWait)
	e.recordDispatch(final, pl)
	if err := e.dispatcher.DispatchSync(ctx, final, pl); err != nil {
		e.setStatus(final.ID, types.TaskStatusFail)
		return err
	}
	e.setStatus(final.ID, types.TaskStatusSuccess)

	e.stateMu.Lock()
	e.finalExec = &types.FinalSegmentExecution{
		SegmentID:     final.ID,
		Worker:        pl.Workers[0],
		ParallelIndex: 0,
	}
	e.stateMu.Unlock()
	logger.Debug("attempt %s: final segment %d dispatched to %s",
		e.attemptID, final.ID, pl.Workers[0].Address)
	return nil
}

// checkDeadline reports a deadline violation as such, even when no
// individual call has timed out.
func (e *Engine) checkDeadline() error {
	if time.Now().Before(e.deadline) {
		return nil
	}
	return types.NewDeadlineExceededError(e.deadline, e.pendingSegments())
}

func (e *Engine) pendingSegments() int {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	pending := 0
	for _, st := range e.statuses {
		if st != types.TaskStatusSuccess {
			pending++
		}
	}
	return pending
}

func (e *Engine) setStatus(id types.SegmentID, st types.TaskStatus) {
	e.stateMu.Lock()
	e.statuses[id] = st
	e.stateMu.Unlock()
}

// fail records err (first failure wins) and trips cancellation.
func (e *Engine) fail(err error) {
	if err == nil {
		return
	}
	e.errSlot.Set(err)
	e.cancelled.Store(true)
	e.closeStop()
}

// expire trips cancellation with a deadline violation.
func (e *Engine) expire() {
	e.fail(types.NewDeadlineExceededError(e.deadline, e.pendingSegments()))
}

func (e *Engine) closeStop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
	})
}

// cleanup best-effort cancels outstanding work and removes
// attempt-scoped state from every worker that received dispatches.
func (e *Engine) cleanup(terminal types.AttemptState) {
	e.dispatchMu.Lock()
	nodes := make([]types.WorkerNode, 0, len(e.dispatchedNodes))
	for _, n := range e.dispatchedNodes {
		nodes = append(nodes, n)
	}
	var instances []types.SegmentTaskInstance
	if terminal != types.AttemptStateSucceeded {
		instances = append(instances, e.dispatchedInstances...)
	}
	e.dispatchMu.Unlock()

	if len(nodes) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	e.dispatcher.Cleanup(ctx, nodes, instances)
}

func (e *Engine) outcome(terminal types.AttemptState) *types.ScheduleOutcome {
	e.stateMu.RLock()
	statuses := make(map[types.SegmentID]types.TaskStatus, len(e.statuses))
	for id, st := range e.statuses {
		statuses[id] = st
	}
	finalExec := e.finalExec
	startTime, endTime := e.startTime, e.endTime
	e.stateMu.RUnlock()

	var err error
	if terminal != types.AttemptStateSucceeded {
		err = e.errSlot.Get()
	}
	return &types.ScheduleOutcome{
		QueryID:       e.queryID,
		AttemptID:     e.attemptID,
		State:         terminal,
		Err:           err,
		Final:         finalExec,
		SegmentStatus: statuses,
		Results:       e.scheduleResult(statuses),
		StartTime:     startTime,
		EndTime:       endTime,
	}
}

// scheduleResult flattens the per-segment statuses and errors into the
// outcome's task result batch, ordered by segment id.
func (e *Engine) scheduleResult(statuses map[types.SegmentID]types.TaskStatus) types.ScheduleResult {
	ids := make([]types.SegmentID, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	e.instMu.Lock()
	defer e.instMu.Unlock()
	res := types.ScheduleResult{Batch: make([]types.TaskResult, 0, len(ids))}
	for _, id := range ids {
		res.Batch = append(res.Batch, types.TaskResult{
			SegmentID: id,
			Status:    statuses[id],
			Err:       e.segmentErr[id],
		})
	}
	return res
}
