package placement

import (
	"sync"
	"sync/atomic"

	"distql/scheduler/pkg/types"
)

// Cache memoizes NodeSelector results per segment id so repeated
// instances of the same segment never re-select. The cache has its own
// lock, distinct from the topology lock, so placement lookups do not
// contend with dependency bookkeeping.
type Cache struct {
	selector NodeSelector

	mu      sync.Mutex
	results map[types.SegmentID]types.Placement

	selectCalls atomic.Int64
}

// NewCache creates a cache over the given selector. One Cache instance
// lives per query attempt.
func NewCache(selector NodeSelector) *Cache {
	return &Cache{
		selector: selector,
		results:  make(map[types.SegmentID]types.Placement),
	}
}

// SelectNodes returns the cached placement for the segment or computes
// and stores it. Selector failure is terminal for the attempt and is
// not cached, matching the fail-fast contract.
func (c *Cache) SelectNodes(segment *types.Segment) (types.Placement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.results[segment.ID]; ok {
		return cached, nil
	}

	c.selectCalls.Add(1)
	placement, err := c.selector.Select(segment, segment.HasTableScanOrValue)
	if err != nil {
		return types.Placement{}, err
	}
	if len(placement.Workers) == 0 {
		return types.Placement{}, types.NewPlacementError(segment.ID, "selector returned empty placement")
	}
	c.results[segment.ID] = placement
	return placement, nil
}

// SelectCount returns how many times the underlying selector was
// invoked. Used by tests to verify memoization.
func (c *Cache) SelectCount() int64 {
	return c.selectCalls.Load()
}
