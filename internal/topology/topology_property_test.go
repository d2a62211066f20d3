// Property: for any acyclic plan graph, driving completions through
// the index releases every segment exactly once, and never before all
// of its dependencies completed.
package topology

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"distql/scheduler/pkg/types"
)

// genLayeredSegments builds a random DAG where segment i may depend
// only on segments with smaller ids, which guarantees acyclicity. The
// last segment depends on every sink so it is the unique final.
func genLayeredSegments(count int, edges []bool) []*types.Segment {
	segments := make([]*types.Segment, count)
	hasDependent := make([]bool, count)
	edge := 0
	for i := 0; i < count; i++ {
		var deps []types.SegmentID
		for j := 0; j < i; j++ {
			if edge < len(edges) && edges[edge] {
				deps = append(deps, types.SegmentID(j+1))
				hasDependent[j] = true
			}
			edge++
		}
		segments[i] = &types.Segment{ID: types.SegmentID(i + 1), Dependencies: deps}
	}
	final := segments[count-1]
	for j := 0; j < count-1; j++ {
		if !hasDependent[j] && !final.DependsOn(types.SegmentID(j+1)) {
			final.Dependencies = append(final.Dependencies, types.SegmentID(j+1))
		}
	}
	return segments
}

func TestEverySegmentReleasedExactlyOnceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every segment becomes ready exactly once, final last", prop.ForAll(
		func(count int, edges []bool) bool {
			if count < 2 {
				count = 2
			}
			if count > 12 {
				count = 12
			}

			segments := genLayeredSegments(count, edges)
			finalID := segments[count-1].ID
			graph, err := types.NewPlanGraph(segments, finalID)
			if err != nil {
				return false
			}
			idx := Build(graph)

			releases := make(map[types.SegmentID]int)
			queue := idx.InitialReady()
			for _, id := range queue {
				releases[id]++
			}
			var order []types.SegmentID
			for len(queue) > 0 {
				id := queue[0]
				queue = queue[1:]
				order = append(order, id)
				for _, ready := range idx.DecrementDependency(id) {
					releases[ready]++
					queue = append(queue, ready)
				}
			}

			if len(order) != count {
				return false
			}
			for _, n := range releases {
				if n != 1 {
					return false
				}
			}
			// The final segment is the sink; it must come out last.
			return order[count-1] == finalID
		},
		gen.IntRange(2, 12),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
