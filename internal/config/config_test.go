package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "sequential", cfg.Scheduler.Strategy)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.MaxExecutionTime)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.RPCSendTimeout)
	assert.Equal(t, 64, cfg.Scheduler.ReadyQueueCapacity)
	assert.Equal(t, ":8080", cfg.REST.Address)
	assert.Equal(t, "info", cfg.Logging.Level)

	require.NoError(t, NewValidator().Validate(cfg))
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
scheduler:
  strategy: pipelined
  max_execution_time: 30s
  ready_queue_capacity: 4
workers:
  local_address: 10.1.0.1
  nodes:
    - id: w1
      address: 10.0.0.1
      rpc_port: 9100
    - id: w2
      address: 10.0.0.2
      rpc_port: 9100
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "pipelined", cfg.Scheduler.Strategy)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.MaxExecutionTime)
	assert.Equal(t, 4, cfg.Scheduler.ReadyQueueCapacity)
	// Unset fields keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Scheduler.RPCSendTimeout)

	require.Len(t, cfg.Workers.Nodes, 2)
	assert.Equal(t, "w1", cfg.Workers.Nodes[0].ID)
	assert.Equal(t, 9100, cfg.Workers.Nodes[0].RPCPort)
}

func TestParseConfigInvalidYAML(t *testing.T) {
	_, err := ParseConfig([]byte("scheduler: ["))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scheduler.yaml")
	content := []byte("scheduler:\n  strategy: pipelined\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pipelined", cfg.Scheduler.Strategy)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sequential", cfg.Scheduler.Strategy)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DQS_SCHEDULER_STRATEGY", "pipelined")
	t.Setenv("DQS_SCHEDULER_MAX_EXECUTION_TIME", "90s")
	t.Setenv("DQS_SCHEDULER_READY_QUEUE_CAPACITY", "16")
	t.Setenv("DQS_REST_ENABLE_CORS", "true")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "pipelined", cfg.Scheduler.Strategy)
	assert.Equal(t, 90*time.Second, cfg.Scheduler.MaxExecutionTime)
	assert.Equal(t, 16, cfg.Scheduler.ReadyQueueCapacity)
	assert.True(t, cfg.REST.EnableCORS)
}

func TestEnvOverrideInvalidValue(t *testing.T) {
	t.Setenv("DQS_SCHEDULER_READY_QUEUE_CAPACITY", "lots")
	_, err := NewLoader().Load()
	require.Error(t, err)
}

func TestCmdOverrides(t *testing.T) {
	cfg, err := NewLoader().WithCmdArgs(map[string]string{
		"scheduler.strategy":         "pipelined",
		"scheduler.rpc_send_timeout": "3s",
		"rest.address":               ":9999",
	}).Load()
	require.NoError(t, err)

	assert.Equal(t, "pipelined", cfg.Scheduler.Strategy)
	assert.Equal(t, 3*time.Second, cfg.Scheduler.RPCSendTimeout)
	assert.Equal(t, ":9999", cfg.REST.Address)
}

func TestCmdOverrideUnknownPath(t *testing.T) {
	_, err := NewLoader().WithCmdArgs(map[string]string{
		"scheduler.bogus": "1",
	}).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config path")
}

func TestCmdOverridesBeatEnv(t *testing.T) {
	t.Setenv("DQS_SCHEDULER_STRATEGY", "sequential")
	cfg, err := NewLoader().WithCmdArgs(map[string]string{
		"scheduler.strategy": "pipelined",
	}).Load()
	require.NoError(t, err)
	assert.Equal(t, "pipelined", cfg.Scheduler.Strategy)
}

func TestSerializeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scheduler.Strategy = "pipelined"

	data, err := cfg.Serialize()
	require.NoError(t, err)

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Scheduler, parsed.Scheduler)
	assert.Equal(t, cfg.REST, parsed.REST)
}
