package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distql/scheduler/internal/dispatch"
	"distql/scheduler/internal/scheduler"
	"distql/scheduler/pkg/types"
)

// unusedPool satisfies the pool interface for plans that run entirely
// on the coordinator's local entry and never dial a worker.
type unusedPool struct{}

func (unusedPool) ClientFor(node types.WorkerNode) (dispatch.WorkerClient, error) {
	return nil, fmt.Errorf("no client expected for %s", node.Address)
}

func (unusedPool) Close() error { return nil }

// localPlan runs every segment in-process.
const localPlan = `
query_id: q-rest
final_segment: 2
segments:
  - id: 1
    parallelism: 1
  - id: 2
    dependencies: [1]
    parallelism: 1
`

func newTestServer(t *testing.T) (*Server, *scheduler.Coordinator) {
	t.Helper()
	registry := scheduler.NewWorkerRegistry()
	require.NoError(t, registry.Register(types.WorkerNode{
		ID: "w1", Address: "10.0.0.1", RPCPort: 9100, Type: types.NodeTypeRemote,
	}))

	coordinator := scheduler.NewCoordinator(nil, registry, unusedPool{})
	require.NoError(t, coordinator.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = coordinator.Stop(ctx)
	})

	return NewServer(coordinator, nil), coordinator
}

func doJSON(t *testing.T, s *Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, 5000)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func TestHealthCheck(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health.Status)
}

func TestSubmitAndGetAttempt(t *testing.T) {
	s, coordinator := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/attempts",
		SubmitAttemptRequest{Plan: localPlan})
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(body))

	var submitted SubmitAttemptResponse
	require.NoError(t, json.Unmarshal(body, &submitted))
	assert.Equal(t, "q-rest", submitted.QueryID)
	require.NotEmpty(t, submitted.AttemptID)

	outcome, err := coordinator.WaitAttempt(context.Background(), submitted.AttemptID)
	require.NoError(t, err)
	require.Equal(t, types.AttemptStateSucceeded, outcome.State)

	resp, body = doJSON(t, s, http.MethodGet, "/api/v1/attempts/"+submitted.AttemptID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status scheduler.AttemptStatus
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, types.AttemptStateSucceeded, status.State)
	assert.Equal(t, "q-rest", status.QueryID)

	resp, body = doJSON(t, s, http.MethodGet, "/api/v1/attempts", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list AttemptListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Count)

	resp, body = doJSON(t, s, http.MethodGet, "/api/v1/attempts/"+submitted.AttemptID+"/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var m MetricsResponse
	require.NoError(t, json.Unmarshal(body, &m))
	assert.Equal(t, submitted.AttemptID, m.AttemptID)
}

func TestSubmitInvalidPlan(t *testing.T) {
	s, _ := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/attempts",
		SubmitAttemptRequest{Plan: "segments: ["})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "invalid_plan", errResp.Error)
}

func TestSubmitMissingPlan(t *testing.T) {
	s, _ := newTestServer(t)
	resp, _ := doJSON(t, s, http.MethodPost, "/api/v1/attempts", SubmitAttemptRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitBadMaxExecutionTime(t *testing.T) {
	s, _ := newTestServer(t)
	resp, _ := doJSON(t, s, http.MethodPost, "/api/v1/attempts",
		SubmitAttemptRequest{Plan: localPlan, MaxExecutionTime: "forever"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUnknownAttempt(t *testing.T) {
	s, _ := newTestServer(t)
	resp, _ := doJSON(t, s, http.MethodGet, "/api/v1/attempts/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCancelUnknownAttempt(t *testing.T) {
	s, _ := newTestServer(t)
	resp, _ := doJSON(t, s, http.MethodPost, "/api/v1/attempts/nope/cancel", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCancelFinishedAttemptConflicts(t *testing.T) {
	s, coordinator := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/attempts",
		SubmitAttemptRequest{Plan: localPlan})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var submitted SubmitAttemptResponse
	require.NoError(t, json.Unmarshal(body, &submitted))
	_, err := coordinator.WaitAttempt(context.Background(), submitted.AttemptID)
	require.NoError(t, err)

	resp, _ = doJSON(t, s, http.MethodPost, "/api/v1/attempts/"+submitted.AttemptID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestListWorkers(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := doJSON(t, s, http.MethodGet, "/api/v1/workers", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var workers WorkerListResponse
	require.NoError(t, json.Unmarshal(body, &workers))
	assert.Equal(t, 1, workers.Count)
	require.Len(t, workers.Workers, 1)
	assert.Equal(t, "w1", workers.Workers[0].Node.ID)
}
