package scheduler

import (
	"fmt"
	"sync"
	"time"

	"distql/scheduler/pkg/types"
)

// WorkerEntry is a registered worker plus its liveness bookkeeping.
type WorkerEntry struct {
	Node     types.WorkerNode  `json:"node"`
	State    types.WorkerState `json:"state"`
	LastSeen time.Time         `json:"last_seen"`
}

// WorkerRegistry tracks the set of workers available for placement.
// It is shared by the REST surface and attempt construction.
type WorkerRegistry struct {
	mu      sync.RWMutex
	workers map[string]*WorkerEntry
}

// NewWorkerRegistry creates an empty registry.
func NewWorkerRegistry() *WorkerRegistry {
	return &WorkerRegistry{
		workers: make(map[string]*WorkerEntry),
	}
}

// Register adds a worker. Registering an existing ID refreshes its
// entry and marks it online.
func (r *WorkerRegistry) Register(node types.WorkerNode) error {
	if node.ID == "" {
		return fmt.Errorf("worker ID cannot be empty")
	}
	if node.Address == "" {
		return fmt.Errorf("worker %s: address cannot be empty", node.ID)
	}
	if node.Type == types.NodeTypeRemote && node.RPCPort == 0 {
		return fmt.Errorf("worker %s: rpc port cannot be zero", node.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers[node.ID] = &WorkerEntry{
		Node:     node,
		State:    types.WorkerStateOnline,
		LastSeen: time.Now(),
	}
	return nil
}

// Unregister removes a worker.
func (r *WorkerRegistry) Unregister(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.workers[id]; !exists {
		return fmt.Errorf("worker not found: %s", id)
	}
	delete(r.workers, id)
	return nil
}

// MarkOffline flags a worker without removing it.
func (r *WorkerRegistry) MarkOffline(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, exists := r.workers[id]
	if !exists {
		return fmt.Errorf("worker not found: %s", id)
	}
	entry.State = types.WorkerStateOffline
	return nil
}

// Touch refreshes a worker's liveness timestamp and marks it online.
func (r *WorkerRegistry) Touch(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, exists := r.workers[id]
	if !exists {
		return fmt.Errorf("worker not found: %s", id)
	}
	entry.State = types.WorkerStateOnline
	entry.LastSeen = time.Now()
	return nil
}

// Get returns one worker's entry.
func (r *WorkerRegistry) Get(id string) (*WorkerEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, exists := r.workers[id]
	if !exists {
		return nil, false
	}
	copied := *entry
	return &copied, true
}

// OnlineNodes returns the nodes currently usable for placement.
func (r *WorkerRegistry) OnlineNodes() []types.WorkerNode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	nodes := make([]types.WorkerNode, 0, len(r.workers))
	for _, entry := range r.workers {
		if entry.State == types.WorkerStateOnline {
			nodes = append(nodes, entry.Node)
		}
	}
	return nodes
}

// Snapshot returns all entries, online or not.
func (r *WorkerRegistry) Snapshot() []WorkerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]WorkerEntry, 0, len(r.workers))
	for _, entry := range r.workers {
		entries = append(entries, *entry)
	}
	return entries
}

// Len returns the number of registered workers.
func (r *WorkerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workers)
}
