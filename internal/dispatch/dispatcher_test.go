package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distql/scheduler/internal/metrics"
	"distql/scheduler/pkg/types"
)

// fakeWorkerClient records calls and resolves submissions according to
// the configured failures.
type fakeWorkerClient struct {
	addr string

	mu            sync.Mutex
	resourceCalls int
	submits       []*SubmitRequest
	cancels       int
	removed       int

	failResources bool
	failSegments  map[types.SegmentID]error
}

func newFakeWorkerClient(addr string) *fakeWorkerClient {
	return &fakeWorkerClient{addr: addr, failSegments: make(map[types.SegmentID]error)}
}

func (f *fakeWorkerClient) Address() string { return f.addr }

func (f *fakeWorkerClient) SendResources(ctx context.Context, req *ResourceRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resourceCalls++
	if f.failResources {
		return types.NewTransportError("SendResources", f.addr, errors.New("connection refused"))
	}
	return nil
}

func (f *fakeWorkerClient) SendResourcesAsync(req *ResourceRequest, timeout time.Duration, callback func(error)) *AsyncCall {
	err := f.SendResources(context.Background(), req)
	call := NewAsyncCall("SendResources", callback)
	call.Complete(err)
	return call
}

func (f *fakeWorkerClient) SubmitPlanSegment(req *SubmitRequest, timeout time.Duration, callback func(error)) *AsyncCall {
	f.mu.Lock()
	f.submits = append(f.submits, req)
	err := f.failSegments[req.SegmentID]
	f.mu.Unlock()

	call := NewAsyncCall("SubmitPlanSegment", callback)
	// Resolve on another goroutine like a real transport would.
	go call.Complete(err)
	return call
}

func (f *fakeWorkerClient) GetTaskStatus(ctx context.Context, attemptID string, instances []types.SegmentTaskInstance) (map[types.SegmentTaskInstance]types.TaskStatus, error) {
	statuses := make(map[types.SegmentTaskInstance]types.TaskStatus, len(instances))
	for _, inst := range instances {
		statuses[inst] = types.TaskStatusWait
	}
	return statuses, nil
}

func (f *fakeWorkerClient) CancelTasks(ctx context.Context, attemptID string, instances []types.SegmentTaskInstance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return nil
}

func (f *fakeWorkerClient) RemoveAttemptResource(attemptID string, timeout time.Duration, callback func(error)) *AsyncCall {
	f.mu.Lock()
	f.removed++
	f.mu.Unlock()
	call := NewAsyncCall("RemoveAttemptResource", callback)
	call.Complete(nil)
	return call
}

func (f *fakeWorkerClient) SendOffloadingInfo(ctx context.Context) error {
	return types.ErrUnsupportedOperation
}

func (f *fakeWorkerClient) submitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submits)
}

// fakePool hands out one fake client per address.
type fakePool struct {
	mu      sync.Mutex
	clients map[string]*fakeWorkerClient
}

func newFakePool() *fakePool {
	return &fakePool{clients: make(map[string]*fakeWorkerClient)}
}

func (p *fakePool) ClientFor(node types.WorkerNode) (WorkerClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.clients[node.Address]; ok {
		return c, nil
	}
	c := newFakeWorkerClient(node.Address)
	p.clients[node.Address] = c
	return c, nil
}

func (p *fakePool) Close() error { return nil }

func (p *fakePool) client(addr string) *fakeWorkerClient {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clients[addr]
}

func testDispatchConfig() Config {
	return Config{
		QueryID:      "q1",
		AttemptID:    "attempt-1",
		PrimaryTxnID: "txn-1",
		CallbackPort: 9001,
		SendTimeout:  5 * time.Second,
		Deadline:     time.Now().Add(time.Minute),
	}
}

func remoteNode(id string) types.WorkerNode {
	return types.WorkerNode{ID: id, Address: id + ":9100", RPCPort: 9100, Type: types.NodeTypeRemote}
}

func TestDispatchSyncSubmitsEveryInstance(t *testing.T) {
	pool := newFakePool()
	d := NewDispatcher(testDispatchConfig(), pool, metrics.NewScheduleMetrics())

	seg := &types.Segment{ID: 2, Parallelism: 3, HasTableScanOrValue: true}
	node := remoteNode("w1")
	placement := types.Placement{SegmentID: 2, Workers: []types.WorkerNode{node, node, node}}

	require.NoError(t, d.DispatchSync(context.Background(), seg, placement))

	client := pool.client(node.Address)
	require.NotNil(t, client)
	assert.Equal(t, 3, client.submitCount())
	// Resources pushed once per worker, not per instance.
	assert.Equal(t, 1, client.resourceCalls)

	for i, req := range client.submits {
		assert.Equal(t, "attempt-1", req.AttemptID)
		assert.Equal(t, "txn-1", req.PrimaryTxnID)
		assert.Equal(t, 9001, req.CallbackPort)
		assert.Equal(t, i, req.ParallelIndex)
		assert.Equal(t, 3, req.ParallelSize)
	}
}

func TestDispatchRejectsMissingCallbackPort(t *testing.T) {
	cfg := testDispatchConfig()
	cfg.CallbackPort = 0
	pool := newFakePool()
	d := NewDispatcher(cfg, pool, nil)

	seg := &types.Segment{ID: 1, HasTableScanOrValue: true}
	node := remoteNode("w1")
	placement := types.Placement{SegmentID: 1, Workers: []types.WorkerNode{node}}

	err := d.DispatchSync(context.Background(), seg, placement)
	require.Error(t, err)

	var cfgErr *types.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "callback_port", cfgErr.Field)
	// Rejected before any RPC was issued.
	assert.Nil(t, pool.client(node.Address))
}

func TestDispatchResourceFailureFailsLikeExecution(t *testing.T) {
	pool := newFakePool()
	node := remoteNode("w1")
	client, _ := pool.ClientFor(node)
	client.(*fakeWorkerClient).failResources = true

	d := NewDispatcher(testDispatchConfig(), pool, nil)
	seg := &types.Segment{ID: 4, HasTableScanOrValue: true}
	placement := types.Placement{SegmentID: 4, Workers: []types.WorkerNode{node}}

	err := d.DispatchSync(context.Background(), seg, placement)
	require.Error(t, err)
	var transportErr *types.TransportError
	assert.ErrorAs(t, err, &transportErr)
	// No submission happened after the failed push.
	assert.Equal(t, 0, pool.client(node.Address).submitCount())
}

func TestDispatchSyncPropagatesSubmitFailure(t *testing.T) {
	pool := newFakePool()
	node := remoteNode("w1")
	client, _ := pool.ClientFor(node)
	client.(*fakeWorkerClient).failSegments[3] = types.NewApplicationError("SubmitPlanSegment", 241, "oom")

	d := NewDispatcher(testDispatchConfig(), pool, nil)
	seg := &types.Segment{ID: 3, Parallelism: 2, HasTableScanOrValue: true}
	placement := types.Placement{SegmentID: 3, Workers: []types.WorkerNode{node, node}}

	err := d.DispatchSync(context.Background(), seg, placement)
	var appErr *types.ApplicationError
	require.ErrorAs(t, err, &appErr)
}

func TestDispatchAsyncDeliversPerInstanceCallbacks(t *testing.T) {
	pool := newFakePool()
	d := NewDispatcher(testDispatchConfig(), pool, nil)
	seg := &types.Segment{ID: 5, Parallelism: 2, HasTableScanOrValue: true}
	a, b := remoteNode("w1"), remoteNode("w2")
	placement := types.Placement{SegmentID: 5, Workers: []types.WorkerNode{a, b}}

	var mu sync.Mutex
	got := map[types.SegmentTaskInstance]error{}
	calls, err := d.DispatchAsync(context.Background(), seg, placement, func(inst types.SegmentTaskInstance, err error) {
		mu.Lock()
		got[inst] = err
		mu.Unlock()
	})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	require.NoError(t, WaitAll(context.Background(), calls))

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 2)
	assert.NoError(t, got[types.SegmentTaskInstance{SegmentID: 5, ParallelIndex: 0}])
	assert.NoError(t, got[types.SegmentTaskInstance{SegmentID: 5, ParallelIndex: 1}])
}

func TestDispatchAsyncWithoutInstanceCallback(t *testing.T) {
	// A nil per-instance callback is the sequential strategy's normal
	// mode; completions must resolve cleanly without one.
	pool := newFakePool()
	d := NewDispatcher(testDispatchConfig(), pool, metrics.NewScheduleMetrics())
	seg := &types.Segment{ID: 7, Parallelism: 2, HasTableScanOrValue: true}
	node := remoteNode("w1")
	placement := types.Placement{SegmentID: 7, Workers: []types.WorkerNode{node, node}}

	calls, err := d.DispatchAsync(context.Background(), seg, placement, nil)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	require.NoError(t, WaitAll(context.Background(), calls))
	assert.Equal(t, 2, pool.client(node.Address).submitCount())
}

func TestDispatchLocalCompletesOffCaller(t *testing.T) {
	// Local instances resolve like remote ones: on another goroutine.
	// A synchronous completion would block this unbuffered send inside
	// DispatchAsync.
	pool := newFakePool()
	d := NewDispatcher(testDispatchConfig(), pool, nil)
	seg := &types.Segment{ID: 8, Parallelism: 1}
	local := types.WorkerNode{ID: "local", Address: "127.0.0.1:9000", Type: types.NodeTypeLocal}
	placement := types.Placement{SegmentID: 8, Workers: []types.WorkerNode{local}}

	done := make(chan types.SegmentTaskInstance)
	calls, err := d.DispatchAsync(context.Background(), seg, placement, func(inst types.SegmentTaskInstance, err error) {
		done <- inst
	})
	require.NoError(t, err)

	select {
	case inst := <-done:
		assert.Equal(t, types.SegmentID(8), inst.SegmentID)
	case <-time.After(time.Second):
		t.Fatal("local completion callback never ran")
	}
	require.NoError(t, WaitAll(context.Background(), calls))
}

func TestPrepareWorkersPushesOncePerWorker(t *testing.T) {
	pool := newFakePool()
	d := NewDispatcher(testDispatchConfig(), pool, nil)
	a, b := remoteNode("w1"), remoteNode("w2")
	nodes := []types.WorkerNode{a, b}

	require.NoError(t, d.PrepareWorkers(context.Background(), nodes))
	assert.Equal(t, 1, pool.client(a.Address).resourceCalls)
	assert.Equal(t, 1, pool.client(b.Address).resourceCalls)

	// Prepared workers are skipped by later rounds and submissions.
	require.NoError(t, d.PrepareWorkers(context.Background(), nodes))
	seg := &types.Segment{ID: 2, Parallelism: 1, HasTableScanOrValue: true}
	placement := types.Placement{SegmentID: 2, Workers: []types.WorkerNode{a}}
	require.NoError(t, d.DispatchSync(context.Background(), seg, placement))
	assert.Equal(t, 1, pool.client(a.Address).resourceCalls)
}

func TestPrepareWorkersAsyncRetriesAfterFailure(t *testing.T) {
	pool := newFakePool()
	node := remoteNode("w1")
	client, _ := pool.ClientFor(node)
	client.(*fakeWorkerClient).failResources = true
	d := NewDispatcher(testDispatchConfig(), pool, nil)

	err := d.PrepareWorkersAsync(context.Background(), []types.WorkerNode{node})
	require.Error(t, err)
	var transportErr *types.TransportError
	assert.ErrorAs(t, err, &transportErr)

	// A failed push leaves the worker unprepared, so the next round
	// pushes again.
	client.(*fakeWorkerClient).failResources = false
	require.NoError(t, d.PrepareWorkersAsync(context.Background(), []types.WorkerNode{node}))
	assert.Equal(t, 2, pool.client(node.Address).resourceCalls)
}

func TestDispatchLocalPlacementSkipsRPC(t *testing.T) {
	pool := newFakePool()
	d := NewDispatcher(testDispatchConfig(), pool, nil)
	seg := &types.Segment{ID: 6}
	local := types.WorkerNode{ID: "local", Address: "127.0.0.1:9000", Type: types.NodeTypeLocal}
	placement := types.Placement{SegmentID: 6, Workers: []types.WorkerNode{local}}

	require.NoError(t, d.DispatchSync(context.Background(), seg, placement))
	assert.Nil(t, pool.client(local.Address))
}

func TestCallTimeoutBoundedByDeadline(t *testing.T) {
	cfg := testDispatchConfig()
	cfg.SendTimeout = 10 * time.Second
	cfg.Deadline = time.Now().Add(2 * time.Second)
	d := NewDispatcher(cfg, newFakePool(), nil)

	timeout, err := d.CallTimeout(time.Now())
	require.NoError(t, err)
	assert.LessOrEqual(t, timeout, 2*time.Second)

	// Past the deadline, no call may be issued.
	_, err = d.CallTimeout(cfg.Deadline.Add(time.Millisecond))
	require.Error(t, err)
	assert.True(t, types.IsDeadlineExceeded(err))
}

func TestCleanupBestEffort(t *testing.T) {
	pool := newFakePool()
	d := NewDispatcher(testDispatchConfig(), pool, nil)
	node := remoteNode("w1")

	seg := &types.Segment{ID: 1, HasTableScanOrValue: true}
	placement := types.Placement{SegmentID: 1, Workers: []types.WorkerNode{node}}
	require.NoError(t, d.DispatchSync(context.Background(), seg, placement))

	d.Cleanup(context.Background(), []types.WorkerNode{node},
		[]types.SegmentTaskInstance{{SegmentID: 1, ParallelIndex: 0}})

	client := pool.client(node.Address)
	assert.Equal(t, 1, client.cancels)
	assert.Equal(t, 1, client.removed)
}
