package placement

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distql/scheduler/pkg/types"
)

func testCluster(workers int, withLocal bool) types.ClusterNodes {
	var nodes []types.WorkerNode
	for i := 0; i < workers; i++ {
		nodes = append(nodes, types.WorkerNode{
			ID:      string(rune('a' + i)),
			Address: "127.0.0.1",
			RPCPort: 9100 + i,
			Type:    types.NodeTypeRemote,
		})
	}
	cluster := types.NewClusterNodes(nodes)
	if withLocal {
		cluster.AddLocal("127.0.0.1:9000")
	}
	return cluster
}

func TestRoundRobinSelectorSpreadsInstances(t *testing.T) {
	selector := NewRoundRobinSelector(testCluster(3, true))

	seg := &types.Segment{ID: 7, Parallelism: 6, HasTableScanOrValue: true}
	placement, err := selector.Select(seg, true)
	require.NoError(t, err)
	require.Len(t, placement.Workers, 6)

	// Six instances over three workers: each worker twice.
	counts := map[string]int{}
	for _, w := range placement.Workers {
		assert.Equal(t, types.NodeTypeRemote, w.Type)
		counts[w.ID]++
	}
	assert.Len(t, counts, 3)
	for _, n := range counts {
		assert.Equal(t, 2, n)
	}
}

func TestRoundRobinSelectorDeterministic(t *testing.T) {
	selector := NewRoundRobinSelector(testCluster(4, true))
	seg := &types.Segment{ID: 3, Parallelism: 5, HasTableScanOrValue: true}

	first, err := selector.Select(seg, true)
	require.NoError(t, err)
	second, err := selector.Select(seg, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoundRobinSelectorLocalAffinity(t *testing.T) {
	selector := NewRoundRobinSelector(testCluster(3, true))

	seg := &types.Segment{ID: 9, Parallelism: 1}
	placement, err := selector.Select(seg, false)
	require.NoError(t, err)
	require.Len(t, placement.Workers, 1)
	assert.True(t, placement.Workers[0].IsLocal())
}

func TestRoundRobinSelectorNoWorkers(t *testing.T) {
	selector := NewRoundRobinSelector(testCluster(0, false))

	seg := &types.Segment{ID: 1, HasTableScanOrValue: true}
	_, err := selector.Select(seg, true)
	require.Error(t, err)

	var placementErr *types.PlacementError
	assert.ErrorAs(t, err, &placementErr)
	assert.Equal(t, types.SegmentID(1), placementErr.SegmentID)
}

// countingSelector records invocations per segment id.
type countingSelector struct {
	inner NodeSelector

	mu    sync.Mutex
	calls map[types.SegmentID]int
}

func newCountingSelector(inner NodeSelector) *countingSelector {
	return &countingSelector{inner: inner, calls: make(map[types.SegmentID]int)}
}

func (s *countingSelector) Select(segment *types.Segment, hasTableScanOrValue bool) (types.Placement, error) {
	s.mu.Lock()
	s.calls[segment.ID]++
	s.mu.Unlock()
	return s.inner.Select(segment, hasTableScanOrValue)
}

func TestCacheMemoizesPerSegment(t *testing.T) {
	counting := newCountingSelector(NewRoundRobinSelector(testCluster(2, true)))
	cache := NewCache(counting)

	seg := &types.Segment{ID: 5, Parallelism: 4, HasTableScanOrValue: true}

	// Repeated instances of the same segment re-use the first result.
	first, err := cache.SelectNodes(seg)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		p, err := cache.SelectNodes(seg)
		require.NoError(t, err)
		assert.Equal(t, first, p)
	}

	assert.Equal(t, 1, counting.calls[seg.ID])
	assert.Equal(t, int64(1), cache.SelectCount())
}

func TestCacheConcurrentLookupsSelectOnce(t *testing.T) {
	counting := newCountingSelector(NewRoundRobinSelector(testCluster(2, true)))
	cache := NewCache(counting)
	seg := &types.Segment{ID: 2, Parallelism: 2, HasTableScanOrValue: true}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.SelectNodes(seg)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, counting.calls[seg.ID])
}

func TestCacheSelectorErrorNotCached(t *testing.T) {
	counting := newCountingSelector(NewRoundRobinSelector(testCluster(0, false)))
	cache := NewCache(counting)
	seg := &types.Segment{ID: 8, HasTableScanOrValue: true}

	_, err := cache.SelectNodes(seg)
	require.Error(t, err)
	_, err = cache.SelectNodes(seg)
	require.Error(t, err)

	// The failure is terminal for the attempt; the cache holds no entry.
	assert.Equal(t, 2, counting.calls[seg.ID])
}
