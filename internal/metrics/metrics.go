// Package metrics records in-process scheduling metrics for one query
// attempt: dispatch latencies, round durations and call counters.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// ScheduleMetrics aggregates timing and counters for one attempt.
// Histograms track microseconds from 1us to 5 minutes.
type ScheduleMetrics struct {
	mu sync.Mutex

	dispatchLatency *hdrhistogram.Histogram
	roundDuration   *hdrhistogram.Histogram

	dispatchedInstances int64
	failedCalls         int64
	suppressedErrors    int64
	rounds              int64
}

// NewScheduleMetrics creates an empty recorder.
func NewScheduleMetrics() *ScheduleMetrics {
	return &ScheduleMetrics{
		dispatchLatency: hdrhistogram.New(1, 5*time.Minute.Microseconds(), 3),
		roundDuration:   hdrhistogram.New(1, 5*time.Minute.Microseconds(), 3),
	}
}

// RecordDispatch records the latency of one instance submission.
func (m *ScheduleMetrics) RecordDispatch(d time.Duration, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.dispatchLatency.RecordValue(clampMicros(d))
	m.dispatchedInstances++
	if failed {
		m.failedCalls++
	}
}

// RecordRound records the duration of one scheduling round.
func (m *ScheduleMetrics) RecordRound(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.roundDuration.RecordValue(clampMicros(d))
	m.rounds++
}

// RecordSuppressedErrors sets the count of errors that lost the
// first-write-wins race.
func (m *ScheduleMetrics) RecordSuppressedErrors(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppressedErrors = int64(n)
}

// Snapshot is a point-in-time copy for reporting.
type Snapshot struct {
	DispatchedInstances int64 `json:"dispatched_instances"`
	FailedCalls         int64 `json:"failed_calls"`
	SuppressedErrors    int64 `json:"suppressed_errors"`
	Rounds              int64 `json:"rounds"`

	DispatchP50Micros int64 `json:"dispatch_p50_us"`
	DispatchP95Micros int64 `json:"dispatch_p95_us"`
	DispatchP99Micros int64 `json:"dispatch_p99_us"`
	DispatchMaxMicros int64 `json:"dispatch_max_us"`

	RoundP50Micros int64 `json:"round_p50_us"`
	RoundMaxMicros int64 `json:"round_max_us"`
}

// Snapshot returns current values.
func (m *ScheduleMetrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		DispatchedInstances: m.dispatchedInstances,
		FailedCalls:         m.failedCalls,
		SuppressedErrors:    m.suppressedErrors,
		Rounds:              m.rounds,
		DispatchP50Micros:   m.dispatchLatency.ValueAtQuantile(50),
		DispatchP95Micros:   m.dispatchLatency.ValueAtQuantile(95),
		DispatchP99Micros:   m.dispatchLatency.ValueAtQuantile(99),
		DispatchMaxMicros:   m.dispatchLatency.Max(),
		RoundP50Micros:      m.roundDuration.ValueAtQuantile(50),
		RoundMaxMicros:      m.roundDuration.Max(),
	}
}

func clampMicros(d time.Duration) int64 {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	max := 5 * time.Minute.Microseconds()
	if us > max {
		us = max
	}
	return us
}
