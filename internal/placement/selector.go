// Package placement chooses worker nodes for plan segments and
// memoizes the choice so every instance of a segment lands on the
// placement computed for its first instance.
package placement

import (
	"distql/scheduler/pkg/types"
)

// NodeSelector is the pure placement function. Implementations must be
// deterministic given the same candidate worker set and segment.
type NodeSelector interface {
	// Select chooses one worker per parallel instance of the segment.
	Select(segment *types.Segment, hasTableScanOrValue bool) (types.Placement, error)
}

// RoundRobinSelector spreads segment instances across the remote
// workers of a cluster, starting at an offset derived from the segment
// id so distinct segments do not all pile onto the first worker.
// Segments without table scans or literal inputs are placed on the
// local coordinator entry when one exists.
type RoundRobinSelector struct {
	nodes types.ClusterNodes
}

// NewRoundRobinSelector creates a selector over the given cluster.
func NewRoundRobinSelector(nodes types.ClusterNodes) *RoundRobinSelector {
	return &RoundRobinSelector{nodes: nodes}
}

// Select implements NodeSelector.
func (s *RoundRobinSelector) Select(segment *types.Segment, hasTableScanOrValue bool) (types.Placement, error) {
	if segment == nil {
		return types.Placement{}, types.NewPlacementError(0, "segment cannot be nil")
	}

	if !hasTableScanOrValue {
		if local, ok := s.nodes.Local(); ok {
			return types.Placement{
				SegmentID: segment.ID,
				Workers:   []types.WorkerNode{local},
			}, nil
		}
	}

	remotes := s.nodes.Remotes()
	if len(remotes) == 0 {
		return types.Placement{}, types.NewPlacementError(segment.ID, "no eligible worker in cluster")
	}

	count := segment.InstanceCount()
	workers := make([]types.WorkerNode, count)
	offset := int(uint64(segment.ID) % uint64(len(remotes)))
	for i := 0; i < count; i++ {
		workers[i] = remotes[(offset+i)%len(remotes)]
	}
	return types.Placement{SegmentID: segment.ID, Workers: workers}, nil
}
