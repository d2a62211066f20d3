package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "List the configured worker nodes",
	RunE:  listWorkers,
}

func init() {
	rootCmd.AddCommand(workersCmd)
}

func listWorkers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("local: %s\n", cfg.Workers.LocalAddress)
	if len(cfg.Workers.Nodes) == 0 {
		fmt.Println("no remote workers configured")
		return nil
	}
	for _, node := range cfg.Workers.RemoteNodes() {
		fmt.Printf("%-12s %s:%d\n", node.ID, node.Address, node.RPCPort)
	}
	return nil
}
