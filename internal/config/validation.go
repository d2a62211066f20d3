package config

import (
	"fmt"
	"net"
	"strings"

	"distql/scheduler/pkg/types"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates configuration values. It collects every
// violation rather than stopping at the first one.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{Field: field, Message: message})
}

// Validate validates the entire configuration and returns any errors.
func (v *Validator) Validate(cfg *Config) error {
	v.errors = make(ValidationErrors, 0)

	v.validateSchedulerConfig(&cfg.Scheduler)
	v.validateGRPCConfig(&cfg.GRPC)
	v.validateRESTConfig(&cfg.REST)
	v.validateLoggingConfig(&cfg.Logging)
	v.validateWorkersConfig(&cfg.Workers)

	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

func (v *Validator) validateSchedulerConfig(cfg *SchedulerConfig) {
	switch cfg.Strategy {
	case "sequential", "pipelined":
	default:
		v.addError("scheduler.strategy",
			fmt.Sprintf("unknown strategy %q, expected sequential or pipelined", cfg.Strategy))
	}
	if cfg.MaxExecutionTime <= 0 {
		v.addError("scheduler.max_execution_time", "must be positive")
	}
	if cfg.RPCSendTimeout <= 0 {
		v.addError("scheduler.rpc_send_timeout", "must be positive")
	}
	if cfg.RPCSendTimeout > 0 && cfg.MaxExecutionTime > 0 && cfg.RPCSendTimeout > cfg.MaxExecutionTime {
		v.addError("scheduler.rpc_send_timeout", "cannot exceed max_execution_time")
	}
	if cfg.ReadyQueueCapacity < 1 {
		v.addError("scheduler.ready_queue_capacity", "must be at least 1")
	}
	if cfg.CallbackPort < 1 || cfg.CallbackPort > 65535 {
		v.addError("scheduler.callback_port", "must be between 1 and 65535")
	}
	if cfg.MaxConcurrentAttempts < 1 {
		v.addError("scheduler.max_concurrent_attempts", "must be at least 1")
	}
}

func (v *Validator) validateGRPCConfig(cfg *GRPCConfig) {
	if cfg.DialTimeout <= 0 {
		v.addError("grpc.dial_timeout", "must be positive")
	}
	if cfg.MaxRecvMsgSize <= 0 {
		v.addError("grpc.max_recv_msg_size", "must be positive")
	}
	if cfg.MaxSendMsgSize <= 0 {
		v.addError("grpc.max_send_msg_size", "must be positive")
	}
	if cfg.KeepaliveTime <= 0 {
		v.addError("grpc.keepalive_time", "must be positive")
	}
}

func (v *Validator) validateRESTConfig(cfg *RESTConfig) {
	if cfg.Address == "" {
		v.addError("rest.address", "address is required")
	} else if !isValidAddress(cfg.Address) {
		v.addError("rest.address", "invalid address format, expected host:port or :port")
	}
	if cfg.ReadTimeout <= 0 {
		v.addError("rest.read_timeout", "must be positive")
	}
	if cfg.WriteTimeout <= 0 {
		v.addError("rest.write_timeout", "must be positive")
	}
}

func (v *Validator) validateLoggingConfig(cfg *LoggingConfig) {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
	default:
		v.addError("logging.level",
			fmt.Sprintf("unknown level %q, expected debug, info, warn or error", cfg.Level))
	}
}

func (v *Validator) validateWorkersConfig(cfg *WorkersConfig) {
	if cfg.LocalAddress == "" {
		v.addError("workers.local_address", "address is required")
	}
	seen := make(map[string]bool, len(cfg.Nodes))
	for i, node := range cfg.Nodes {
		field := fmt.Sprintf("workers.nodes[%d]", i)
		if node.ID == "" {
			v.addError(field+".id", "worker ID is required")
		} else if seen[node.ID] {
			v.addError(field+".id", fmt.Sprintf("duplicate worker ID %q", node.ID))
		}
		seen[node.ID] = true
		if node.Address == "" {
			v.addError(field+".address", "worker address is required")
		}
		// A worker we cannot call is a misconfiguration, not a
		// runtime surprise.
		if node.RPCPort < 1 || node.RPCPort > 65535 {
			v.addError(field+".rpc_port", "must be between 1 and 65535")
		}
	}
}

// RemoteNodes returns the configured workers typed as remote nodes.
func (c *WorkersConfig) RemoteNodes() []types.WorkerNode {
	nodes := make([]types.WorkerNode, len(c.Nodes))
	for i, n := range c.Nodes {
		n.Type = types.NodeTypeRemote
		nodes[i] = n
	}
	return nodes
}

// isValidAddress checks host:port or :port formats.
func isValidAddress(addr string) bool {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	return port != ""
}
