package rest

import (
	"distql/scheduler/internal/metrics"
	"distql/scheduler/internal/scheduler"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// SubmitAttemptRequest submits a plan for scheduling. The plan is the
// YAML plan-file format; strategy and max_execution_time override the
// coordinator defaults when set.
type SubmitAttemptRequest struct {
	Plan             string `json:"plan"`
	Strategy         string `json:"strategy,omitempty"`
	MaxExecutionTime string `json:"max_execution_time,omitempty"`
	PrimaryTxnID     string `json:"primary_txn_id,omitempty"`
}

// SubmitAttemptResponse returns the created attempt.
type SubmitAttemptResponse struct {
	AttemptID string `json:"attempt_id"`
	QueryID   string `json:"query_id"`
}

// AttemptListResponse lists attempt statuses.
type AttemptListResponse struct {
	Attempts []*scheduler.AttemptStatus `json:"attempts"`
	Count    int                        `json:"count"`
}

// WorkerListResponse lists registered workers.
type WorkerListResponse struct {
	Workers []scheduler.WorkerEntry `json:"workers"`
	Count   int                     `json:"count"`
}

// MetricsResponse wraps an attempt's metrics snapshot.
type MetricsResponse struct {
	AttemptID string           `json:"attempt_id"`
	Metrics   metrics.Snapshot `json:"metrics"`
}
