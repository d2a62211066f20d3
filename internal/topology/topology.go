// Package topology derives and maintains the reverse-edge index of a
// plan graph: for each segment, the set of segments that depend on it,
// plus a live pending-dependency counter per segment. The index is
// built once per query attempt; only the counters mutate afterwards.
package topology

import (
	"sync"

	"distql/scheduler/pkg/types"
)

// Index is the topology index for one query attempt. Completion
// callbacks run on RPC goroutines, so counter mutation is guarded by a
// single mutex; decrement-and-check-zero is one atomic step per
// dependent.
type Index struct {
	mu         sync.Mutex
	dependents map[types.SegmentID][]types.SegmentID
	pending    map[types.SegmentID]int
	ready      []types.SegmentID
}

// Build constructs the index from a plan graph. Segments with zero
// dependencies are immediately ready.
func Build(graph *types.PlanGraph) *Index {
	idx := &Index{
		dependents: make(map[types.SegmentID][]types.SegmentID, graph.Len()),
		pending:    make(map[types.SegmentID]int, graph.Len()),
	}
	for _, id := range graph.SegmentIDs() {
		deps := graph.Dependencies(id)
		idx.pending[id] = len(deps)
		for _, dep := range deps {
			idx.dependents[dep] = append(idx.dependents[dep], id)
		}
		if len(deps) == 0 {
			idx.ready = append(idx.ready, id)
		}
	}
	return idx
}

// InitialReady returns the segments whose dependency count started at
// zero, in graph order.
func (idx *Index) InitialReady() []types.SegmentID {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	ready := make([]types.SegmentID, len(idx.ready))
	copy(ready, idx.ready)
	return ready
}

// DecrementDependency removes doneID from the pending count of every
// segment depending on it and returns the segments whose count reached
// zero by this call. A dependent is returned exactly once across all
// concurrent completions.
func (idx *Index) DecrementDependency(doneID types.SegmentID) []types.SegmentID {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var newlyReady []types.SegmentID
	for _, dependent := range idx.dependents[doneID] {
		idx.pending[dependent]--
		if idx.pending[dependent] == 0 {
			newlyReady = append(newlyReady, dependent)
		}
	}
	return newlyReady
}

// PendingCount returns the current pending-dependency count of a
// segment. Unknown segments report zero.
func (idx *Index) PendingCount(id types.SegmentID) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.pending[id]
}

// Dependents returns the segments that depend on id.
func (idx *Index) Dependents(id types.SegmentID) []types.SegmentID {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	deps := make([]types.SegmentID, len(idx.dependents[id]))
	copy(deps, idx.dependents[id])
	return deps
}
