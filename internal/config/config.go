package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"distql/scheduler/pkg/types"
)

// Config represents the complete configuration for the scheduler.
type Config struct {
	Scheduler SchedulerConfig `yaml:"scheduler"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	REST      RESTConfig      `yaml:"rest"`
	Logging   LoggingConfig   `yaml:"logging"`
	Workers   WorkersConfig   `yaml:"workers"`
}

// SchedulerConfig holds the per-attempt scheduling parameters.
type SchedulerConfig struct {
	Strategy              string        `yaml:"strategy" env:"DQS_SCHEDULER_STRATEGY"`
	MaxExecutionTime      time.Duration `yaml:"max_execution_time" env:"DQS_SCHEDULER_MAX_EXECUTION_TIME"`
	RPCSendTimeout        time.Duration `yaml:"rpc_send_timeout" env:"DQS_SCHEDULER_RPC_SEND_TIMEOUT"`
	ReadyQueueCapacity    int           `yaml:"ready_queue_capacity" env:"DQS_SCHEDULER_READY_QUEUE_CAPACITY"`
	CallbackPort          int           `yaml:"callback_port" env:"DQS_SCHEDULER_CALLBACK_PORT"`
	MaxConcurrentAttempts int           `yaml:"max_concurrent_attempts" env:"DQS_SCHEDULER_MAX_CONCURRENT_ATTEMPTS"`
}

// GRPCConfig holds worker RPC client configuration.
type GRPCConfig struct {
	DialTimeout     time.Duration `yaml:"dial_timeout" env:"DQS_GRPC_DIAL_TIMEOUT"`
	MaxRecvMsgSize  int           `yaml:"max_recv_msg_size" env:"DQS_GRPC_MAX_RECV_MSG_SIZE"`
	MaxSendMsgSize  int           `yaml:"max_send_msg_size" env:"DQS_GRPC_MAX_SEND_MSG_SIZE"`
	KeepaliveTime   time.Duration `yaml:"keepalive_time" env:"DQS_GRPC_KEEPALIVE_TIME"`
	KeepaliveExpiry time.Duration `yaml:"keepalive_timeout" env:"DQS_GRPC_KEEPALIVE_TIMEOUT"`
}

// RESTConfig holds the HTTP status surface configuration.
type RESTConfig struct {
	Address      string        `yaml:"address" env:"DQS_REST_ADDRESS"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"DQS_REST_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"DQS_REST_WRITE_TIMEOUT"`
	EnableCORS   bool          `yaml:"enable_cors" env:"DQS_REST_ENABLE_CORS"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" env:"DQS_LOG_LEVEL"`
}

// WorkersConfig holds the static worker set and the coordinator's own
// placement address.
type WorkersConfig struct {
	LocalAddress string             `yaml:"local_address" env:"DQS_WORKERS_LOCAL_ADDRESS"`
	Nodes        []types.WorkerNode `yaml:"nodes"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			Strategy:              "sequential",
			MaxExecutionTime:      60 * time.Second,
			RPCSendTimeout:        10 * time.Second,
			ReadyQueueCapacity:    64,
			CallbackPort:          9400,
			MaxConcurrentAttempts: 100,
		},
		GRPC: GRPCConfig{
			DialTimeout:     5 * time.Second,
			MaxRecvMsgSize:  4 * 1024 * 1024, // 4MB
			MaxSendMsgSize:  4 * 1024 * 1024, // 4MB
			KeepaliveTime:   30 * time.Second,
			KeepaliveExpiry: 10 * time.Second,
		},
		REST: RESTConfig{
			Address:      ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			EnableCORS:   false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Workers: WorkersConfig{
			LocalAddress: "127.0.0.1",
		},
	}
}

// Loader handles configuration loading from multiple sources.
type Loader struct {
	configPath string
	cmdArgs    map[string]string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		cmdArgs: make(map[string]string),
	}
}

// WithConfigPath sets the path to the YAML configuration file.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithCmdArgs sets command-line arguments for configuration override.
func (l *Loader) WithCmdArgs(args map[string]string) *Loader {
	l.cmdArgs = args
	return l
}

// Load loads configuration from all sources with proper precedence:
// defaults < YAML file < environment variables < command-line flags.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := l.applyCmdOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying command-line overrides: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file. A missing file
// is not an error; defaults apply.
func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration based on the env struct tags.
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	return l.applyEnvToStruct(reflect.ValueOf(cfg).Elem())
}

func (l *Loader) applyEnvToStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if field.Kind() == reflect.Struct && field.Type() != reflect.TypeOf(time.Time{}) {
			if err := l.applyEnvToStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}
		envValue := os.Getenv(envTag)
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("setting field %s from %s: %w", fieldType.Name, envTag, err)
		}
	}
	return nil
}

// applyCmdOverrides applies dot-notation command-line overrides such
// as "scheduler.strategy=pipelined".
func (l *Loader) applyCmdOverrides(cfg *Config) error {
	for key, value := range l.cmdArgs {
		if err := l.setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("setting config value %s: %w", key, err)
		}
	}
	return nil
}

func (l *Loader) setConfigValue(cfg *Config, path, value string) error {
	parts := strings.Split(path, ".")
	v := reflect.ValueOf(cfg).Elem()

	for i, part := range parts {
		fieldName := strings.ReplaceAll(part, "_", "")
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName) || strings.EqualFold(name, part)
		})
		if !field.IsValid() {
			return fmt.Errorf("unknown config path: %s", path)
		}

		if i == len(parts)-1 {
			return setFieldValue(field, value)
		}
		if field.Kind() != reflect.Struct {
			return fmt.Errorf("expected %s to be a struct, got %s", part, field.Kind())
		}
		v = field
	}
	return nil
}

// setFieldValue sets a reflect.Value from a string value.
func setFieldValue(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.SetInt(int64(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer: %w", err)
		}
		field.SetUint(u)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			field.Set(reflect.ValueOf(parts))
		} else {
			return fmt.Errorf("unsupported slice element type: %s", field.Type().Elem().Kind())
		}

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}

// Serialize serializes the configuration to YAML bytes.
func (c *Config) Serialize() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseConfig parses a YAML configuration from bytes on top of the
// defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file path.
func LoadFromFile(path string) (*Config, error) {
	return NewLoader().WithConfigPath(path).Load()
}
