package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	grpcclient "distql/scheduler/api/grpc/client"
	"distql/scheduler/internal/config"
	"distql/scheduler/internal/plan"
	"distql/scheduler/internal/scheduler"
	"distql/scheduler/pkg/logger"
	"distql/scheduler/pkg/types"
)

var (
	runStrategy     string
	runMaxExecution time.Duration
	runPrimaryTxnID string
)

var runCmd = &cobra.Command{
	Use:   "run <plan.yaml>",
	Short: "Schedule one query plan and wait for it to finish",
	Example: `  # Schedule a plan with the configured defaults
  distql-scheduler run plan.yaml

  # Pipelined dispatch with a tighter deadline
  distql-scheduler run --strategy pipelined --max-execution-time 30s plan.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runStrategy, "strategy", "", "dispatch strategy (sequential or pipelined, overrides config)")
	runCmd.Flags().DurationVar(&runMaxExecution, "max-execution-time", 0, "attempt deadline (overrides config)")
	runCmd.Flags().StringVar(&runPrimaryTxnID, "txn", "", "primary transaction id carried on worker calls")
}

// buildCoordinator assembles the registry, worker client pool and
// coordinator from the effective configuration.
func buildCoordinator(cfg *config.Config) (*scheduler.Coordinator, *grpcclient.Pool, error) {
	registry := scheduler.NewWorkerRegistry()
	for _, node := range cfg.Workers.RemoteNodes() {
		if err := registry.Register(node); err != nil {
			return nil, nil, fmt.Errorf("registering worker: %w", err)
		}
	}

	pool := grpcclient.NewPool(&grpcclient.Config{
		DialTimeout:      cfg.GRPC.DialTimeout,
		MaxRecvMsgSize:   cfg.GRPC.MaxRecvMsgSize,
		MaxSendMsgSize:   cfg.GRPC.MaxSendMsgSize,
		KeepaliveTime:    cfg.GRPC.KeepaliveTime,
		KeepaliveTimeout: cfg.GRPC.KeepaliveExpiry,
	})

	coordinator := scheduler.NewCoordinator(&scheduler.CoordinatorConfig{
		LocalAddress:          cfg.Workers.LocalAddress,
		CallbackPort:          cfg.Scheduler.CallbackPort,
		Strategy:              cfg.Scheduler.Strategy,
		MaxExecutionTime:      cfg.Scheduler.MaxExecutionTime,
		RPCSendTimeout:        cfg.Scheduler.RPCSendTimeout,
		ReadyQueueCapacity:    cfg.Scheduler.ReadyQueueCapacity,
		MaxConcurrentAttempts: cfg.Scheduler.MaxConcurrentAttempts,
	}, registry, pool)

	return coordinator, pool, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file, graph, err := plan.NewParser().ParseFile(args[0])
	if err != nil {
		return err
	}

	coordinator, pool, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	if err := coordinator.Start(ctx); err != nil {
		return err
	}
	defer coordinator.Stop(ctx)

	attemptID, err := coordinator.SubmitPlan(ctx, file.QueryID, graph, scheduler.SubmitOptions{
		Strategy:         runStrategy,
		MaxExecutionTime: runMaxExecution,
		PrimaryTxnID:     runPrimaryTxnID,
	})
	if err != nil {
		return err
	}
	logger.Info("query %s: attempt %s submitted, %d segments", file.QueryID, attemptID, graph.Len())

	// First interrupt cancels the attempt; a second one aborts.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Warn("interrupt received, cancelling attempt %s", attemptID)
		_ = coordinator.CancelAttempt(attemptID)
		<-sigCh
		os.Exit(130)
	}()

	outcome, err := coordinator.WaitAttempt(ctx, attemptID)
	if err != nil {
		return err
	}

	printOutcome(outcome)
	if outcome.State != types.AttemptStateSucceeded {
		return fmt.Errorf("attempt %s: %s: %w", attemptID, outcome.State, outcome.Err)
	}
	return nil
}

func printOutcome(outcome *types.ScheduleOutcome) {
	fmt.Printf("query:    %s\n", outcome.QueryID)
	fmt.Printf("attempt:  %s\n", outcome.AttemptID)
	fmt.Printf("state:    %s\n", outcome.State)
	fmt.Printf("duration: %s\n", outcome.Duration().Round(time.Millisecond))
	if outcome.Final != nil {
		fmt.Printf("final:    segment %d on %s\n", outcome.Final.SegmentID, outcome.Final.Worker.Address)
	}

	ids := make([]types.SegmentID, 0, len(outcome.SegmentStatus))
	for id := range outcome.SegmentStatus {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fmt.Printf("  segment %-4d %s\n", id, outcome.SegmentStatus[id])
	}
}
