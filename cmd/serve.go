package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"distql/scheduler/api/rest"
	"distql/scheduler/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduler as a service with the HTTP API",
	Long: `Starts the coordinator and serves the HTTP API for submitting
plans, inspecting attempts and listing workers.`,
	RunE: serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	coordinator, pool, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := coordinator.Start(context.Background()); err != nil {
		return err
	}

	server := rest.NewServer(coordinator, &rest.Config{
		Address:      cfg.REST.Address,
		ReadTimeout:  cfg.REST.ReadTimeout,
		WriteTimeout: cfg.REST.WriteTimeout,
		EnableCORS:   cfg.REST.EnableCORS,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("serving HTTP API on %s", cfg.REST.Address)
	err = server.StartWithContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if stopErr := coordinator.Stop(shutdownCtx); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}
