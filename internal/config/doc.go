// Package config loads and validates scheduler configuration from
// defaults, YAML files, environment variables and command-line
// overrides, in that precedence order.
package config
