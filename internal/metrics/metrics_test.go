package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleMetricsSnapshot(t *testing.T) {
	m := NewScheduleMetrics()

	m.RecordDispatch(2*time.Millisecond, false)
	m.RecordDispatch(4*time.Millisecond, true)
	m.RecordRound(10 * time.Millisecond)
	m.RecordSuppressedErrors(3)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.DispatchedInstances)
	assert.Equal(t, int64(1), snap.FailedCalls)
	assert.Equal(t, int64(3), snap.SuppressedErrors)
	assert.Equal(t, int64(1), snap.Rounds)
	assert.Greater(t, snap.DispatchMaxMicros, int64(0))
	assert.GreaterOrEqual(t, snap.DispatchP99Micros, snap.DispatchP50Micros)
}

func TestScheduleMetricsClampsOutliers(t *testing.T) {
	m := NewScheduleMetrics()

	// Sub-microsecond and multi-hour values must not error out.
	m.RecordDispatch(0, false)
	m.RecordDispatch(2*time.Hour, false)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.DispatchedInstances)
}
