// Package cmd implements the distql-scheduler CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"distql/scheduler/internal/config"
	"distql/scheduler/pkg/logger"
)

const (
	// Version is the current release version.
	Version = "0.1.0"
)

var (
	cfgFile string
	debug   bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "distql-scheduler",
	Short: "Distributed query plan scheduler",
	Long: `distql-scheduler dispatches query plan segments across a cluster of
workers, tracking inter-segment dependencies and collecting the final
result segment on the coordinator.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case debug:
			logger.EnableDebug()
		case quiet:
			logger.SetLevelFromString("error")
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(fmt.Sprintf("distql-scheduler %s\n", Version))
}

// loadConfig loads and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().WithConfigPath(cfgFile).Load()
	if err != nil {
		return nil, err
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	if cfg.Logging.Level != "" && !debug && !quiet {
		logger.SetLevelFromString(cfg.Logging.Level)
	}
	return cfg, nil
}
