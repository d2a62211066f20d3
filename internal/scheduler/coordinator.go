package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"distql/scheduler/internal/dispatch"
	"distql/scheduler/internal/metrics"
	"distql/scheduler/pkg/logger"
	"distql/scheduler/pkg/types"
)

// CoordinatorConfig holds the configuration for a coordinator.
type CoordinatorConfig struct {
	// LocalAddress is the coordinator's own address, used as the
	// synthetic local placement entry and as the callback target.
	LocalAddress string

	// CallbackPort is the port workers report completions to.
	CallbackPort int

	// Strategy is the default dispatch strategy for new attempts.
	Strategy string

	// MaxExecutionTime bounds each attempt end to end.
	MaxExecutionTime time.Duration

	// RPCSendTimeout bounds each individual worker call.
	RPCSendTimeout time.Duration

	// ReadyQueueCapacity bounds pipelined dispatch fan-out.
	ReadyQueueCapacity int

	// MaxConcurrentAttempts is the number of attempts allowed to run
	// at once.
	MaxConcurrentAttempts int
}

// DefaultCoordinatorConfig returns a default coordinator configuration.
func DefaultCoordinatorConfig() *CoordinatorConfig {
	return &CoordinatorConfig{
		LocalAddress:          "127.0.0.1",
		CallbackPort:          9400,
		Strategy:              StrategySequential,
		MaxExecutionTime:      60 * time.Second,
		RPCSendTimeout:        10 * time.Second,
		ReadyQueueCapacity:    64,
		MaxConcurrentAttempts: 100,
	}
}

// SubmitOptions carries per-attempt overrides of the coordinator
// defaults. Zero values fall back to the configuration.
type SubmitOptions struct {
	Strategy         string
	MaxExecutionTime time.Duration
	PrimaryTxnID     string
	CreateQueries    []string
}

// AttemptInfo holds one attempt's engine and terminal outcome.
type AttemptInfo struct {
	ID        string
	QueryID   string
	Engine    *Engine
	StartTime time.Time

	mu      sync.RWMutex
	outcome *types.ScheduleOutcome
	done    chan struct{}
}

// AttemptStatus is the externally visible view of an attempt.
type AttemptStatus struct {
	AttemptID string                       `json:"attempt_id"`
	QueryID   string                       `json:"query_id"`
	State     types.AttemptState           `json:"state"`
	Strategy  string                       `json:"strategy"`
	Error     string                       `json:"error,omitempty"`
	Segments  map[types.SegmentID]string   `json:"segments"`
	Final     *types.FinalSegmentExecution `json:"final,omitempty"`
	Deadline  time.Time                    `json:"deadline"`
	StartTime time.Time                    `json:"start_time"`
	Metrics   metrics.Snapshot             `json:"metrics"`
}

// Coordinator owns the worker registry and the lifecycle of query
// attempts. One coordinator serves many attempts concurrently; each
// attempt gets a fresh engine.
type Coordinator struct {
	config   *CoordinatorConfig
	registry *WorkerRegistry
	pool     dispatch.ClientPool

	attempts     map[string]*AttemptInfo
	attemptMu    sync.RWMutex
	attemptCount atomic.Int32

	started  atomic.Bool
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewCoordinator creates a coordinator over the given registry and
// client pool.
func NewCoordinator(config *CoordinatorConfig, registry *WorkerRegistry, pool dispatch.ClientPool) *Coordinator {
	if config == nil {
		config = DefaultCoordinatorConfig()
	}
	return &Coordinator{
		config:   config,
		registry: registry,
		pool:     pool,
		attempts: make(map[string]*AttemptInfo),
		stopped:  make(chan struct{}),
	}
}

// Start marks the coordinator ready to accept attempts.
func (c *Coordinator) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("coordinator already started")
	}
	logger.Info("coordinator started, %d workers registered", c.registry.Len())
	return nil
}

// Stop cancels running attempts and refuses new submissions.
func (c *Coordinator) Stop(ctx context.Context) error {
	c.stopOnce.Do(func() {
		c.started.Store(false)
		close(c.stopped)

		c.attemptMu.RLock()
		running := make([]*AttemptInfo, 0, len(c.attempts))
		for _, info := range c.attempts {
			running = append(running, info)
		}
		c.attemptMu.RUnlock()

		for _, info := range running {
			if !info.Engine.State().Terminal() {
				info.Engine.Cancel()
			}
		}
		for _, info := range running {
			select {
			case <-info.done:
			case <-ctx.Done():
				return
			}
		}
	})
	return nil
}

// SubmitPlan starts a new attempt over graph and returns its ID. The
// attempt runs on its own goroutine; callers track it through
// GetAttempt or WaitAttempt.
func (c *Coordinator) SubmitPlan(ctx context.Context, queryID string, graph *types.PlanGraph, opts SubmitOptions) (string, error) {
	if !c.started.Load() {
		return "", fmt.Errorf("coordinator not started")
	}
	if graph == nil {
		return "", fmt.Errorf("plan graph cannot be nil")
	}
	if !c.reserveAttemptSlot() {
		return "", fmt.Errorf("max concurrent attempts reached (%d)", c.config.MaxConcurrentAttempts)
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = c.config.Strategy
	}
	maxExecution := opts.MaxExecutionTime
	if maxExecution <= 0 {
		maxExecution = c.config.MaxExecutionTime
	}

	attemptID := uuid.New().String()
	engine, err := New(Options{
		QueryID:            queryID,
		AttemptID:          attemptID,
		Graph:              graph,
		Workers:            c.registry.OnlineNodes(),
		LocalAddress:       c.config.LocalAddress,
		Pool:               c.pool,
		Strategy:           strategy,
		MaxExecutionTime:   maxExecution,
		RPCSendTimeout:     c.config.RPCSendTimeout,
		ReadyQueueCapacity: c.config.ReadyQueueCapacity,
		CallbackPort:       c.config.CallbackPort,
		PrimaryTxnID:       opts.PrimaryTxnID,
		CreateQueries:      opts.CreateQueries,
	})
	if err != nil {
		c.attemptCount.Add(-1)
		return "", err
	}

	info := &AttemptInfo{
		ID:        attemptID,
		QueryID:   queryID,
		Engine:    engine,
		StartTime: time.Now(),
		done:      make(chan struct{}),
	}

	c.attemptMu.Lock()
	c.attempts[attemptID] = info
	c.attemptMu.Unlock()

	go func() {
		defer c.attemptCount.Add(-1)
		defer close(info.done)
		outcome, err := engine.Schedule(context.Background())
		if err != nil {
			logger.Warn("attempt %s: finished with error: %v", attemptID, err)
		}
		info.mu.Lock()
		info.outcome = outcome
		info.mu.Unlock()
	}()

	return attemptID, nil
}

// reserveAttemptSlot claims one concurrent-attempt slot. Check and
// increment are a single atomic step, so racing submissions can never
// exceed the configured limit.
func (c *Coordinator) reserveAttemptSlot() bool {
	for {
		n := c.attemptCount.Load()
		if int(n) >= c.config.MaxConcurrentAttempts {
			return false
		}
		if c.attemptCount.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// WaitAttempt blocks until the attempt finishes or ctx expires.
func (c *Coordinator) WaitAttempt(ctx context.Context, attemptID string) (*types.ScheduleOutcome, error) {
	info, err := c.attempt(attemptID)
	if err != nil {
		return nil, err
	}
	select {
	case <-info.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	info.mu.RLock()
	defer info.mu.RUnlock()
	return info.outcome, nil
}

// GetAttempt returns the current status of one attempt.
func (c *Coordinator) GetAttempt(attemptID string) (*AttemptStatus, error) {
	info, err := c.attempt(attemptID)
	if err != nil {
		return nil, err
	}
	return c.status(info), nil
}

// ListAttempts returns the status of every known attempt.
func (c *Coordinator) ListAttempts() []*AttemptStatus {
	c.attemptMu.RLock()
	infos := make([]*AttemptInfo, 0, len(c.attempts))
	for _, info := range c.attempts {
		infos = append(infos, info)
	}
	c.attemptMu.RUnlock()

	statuses := make([]*AttemptStatus, 0, len(infos))
	for _, info := range infos {
		statuses = append(statuses, c.status(info))
	}
	return statuses
}

// CancelAttempt trips an attempt's cancellation.
func (c *Coordinator) CancelAttempt(attemptID string) error {
	info, err := c.attempt(attemptID)
	if err != nil {
		return err
	}
	if info.Engine.State().Terminal() {
		return fmt.Errorf("attempt %s already finished", attemptID)
	}
	info.Engine.Cancel()
	return nil
}

// Workers returns the registry snapshot for the API surface.
func (c *Coordinator) Workers() []WorkerEntry {
	return c.registry.Snapshot()
}

func (c *Coordinator) attempt(attemptID string) (*AttemptInfo, error) {
	c.attemptMu.RLock()
	defer c.attemptMu.RUnlock()
	info, exists := c.attempts[attemptID]
	if !exists {
		return nil, fmt.Errorf("attempt not found: %s", attemptID)
	}
	return info, nil
}

func (c *Coordinator) status(info *AttemptInfo) *AttemptStatus {
	engine := info.Engine
	statuses := engine.SegmentStatuses()
	segments := make(map[types.SegmentID]string, len(statuses))
	for id, st := range statuses {
		segments[id] = st.String()
	}

	status := &AttemptStatus{
		AttemptID: info.ID,
		QueryID:   info.QueryID,
		State:     engine.State(),
		Strategy:  engine.strategy.Name(),
		Segments:  segments,
		Deadline:  engine.Deadline(),
		StartTime: info.StartTime,
		Metrics:   engine.Metrics().Snapshot(),
	}
	if err := engine.Err(); err != nil {
		status.Error = err.Error()
	}
	info.mu.RLock()
	if info.outcome != nil {
		status.Final = info.outcome.Final
	}
	info.mu.RUnlock()
	return status
}
