package config

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: serializing a configuration and parsing it back yields the
// same values, whatever they are.
func TestSchedulerConfigRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("scheduler config round-trip preserves data", prop.ForAll(
		func(sc SchedulerConfig) bool {
			cfg := DefaultConfig()
			cfg.Scheduler = sc

			data, err := cfg.Serialize()
			if err != nil {
				return false
			}
			parsed, err := ParseConfig(data)
			if err != nil {
				return false
			}
			return parsed.Scheduler == sc
		},
		genSchedulerConfig(),
	))

	properties.TestingRun(t)
}

// Property: a configuration built from defaults plus any positive
// durations and capacities passes validation.
func TestDefaultsWithSaneOverridesValidateProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("sane overrides always validate", prop.ForAll(
		func(maxExecSeconds int, capacity int, port int) bool {
			cfg := DefaultConfig()
			cfg.Scheduler.MaxExecutionTime = time.Duration(maxExecSeconds) * time.Second
			cfg.Scheduler.RPCSendTimeout = cfg.Scheduler.MaxExecutionTime / 2
			cfg.Scheduler.ReadyQueueCapacity = capacity
			cfg.Scheduler.CallbackPort = port
			return NewValidator().Validate(cfg) == nil
		},
		gen.IntRange(2, 3600),
		gen.IntRange(1, 4096),
		gen.IntRange(1, 65535),
	))

	properties.TestingRun(t)
}

func genSchedulerConfig() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("sequential", "pipelined"),
		gen.IntRange(1, 3600),
		gen.IntRange(1, 60),
		gen.IntRange(1, 1024),
		gen.IntRange(1, 65535),
		gen.IntRange(1, 1000),
	).Map(func(values []interface{}) SchedulerConfig {
		return SchedulerConfig{
			Strategy:              values[0].(string),
			MaxExecutionTime:      time.Duration(values[1].(int)) * time.Second,
			RPCSendTimeout:        time.Duration(values[2].(int)) * time.Second,
			ReadyQueueCapacity:    values[3].(int),
			CallbackPort:          values[4].(int),
			MaxConcurrentAttempts: values[5].(int),
		}
	})
}
