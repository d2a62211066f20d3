package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distql/scheduler/pkg/types"
)

const validPlan = `
query_id: q-42
final_segment: 3
segments:
  - id: 1
    parallelism: 2
    has_table_scan_or_value: true
    payload: "scan t1"
  - id: 2
    parallelism: 2
    has_table_scan_or_value: true
  - id: 3
    dependencies: [1, 2]
    parallelism: 1
`

func TestParseValidPlan(t *testing.T) {
	file, graph, err := NewParser().Parse([]byte(validPlan))
	require.NoError(t, err)

	assert.Equal(t, "q-42", file.QueryID)
	assert.Equal(t, types.SegmentID(3), graph.FinalSegmentID())
	assert.Equal(t, 3, graph.Len())
	assert.Equal(t, []byte("scan t1"), graph.Segment(1).Payload)
	assert.Equal(t, 2, graph.Segment(1).InstanceCount())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, _, err := NewParser().Parse([]byte("query_id: q\nbogus: 1\nsegments:\n  - id: 1\n"))
	require.Error(t, err)
}

func TestParseRejectsMissingQueryID(t *testing.T) {
	_, _, err := NewParser().Parse([]byte("final_segment: 1\nsegments:\n  - id: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query_id")
}

func TestParseRejectsEmptyPlan(t *testing.T) {
	_, _, err := NewParser().Parse([]byte("query_id: q\nfinal_segment: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no segments")
}

func TestParseRejectsCyclicPlan(t *testing.T) {
	data := []byte(`
query_id: q
final_segment: 3
segments:
  - id: 1
    dependencies: [2]
  - id: 2
    dependencies: [1]
  - id: 3
    dependencies: [1, 2]
`)
	_, _, err := NewParser().Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plan")
}
