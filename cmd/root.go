package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dinescout",
	Short: "Multi-source restaurant discovery pipeline",
	Long:  "Discovers restaurants for a city via AI recommendations, web guides, and the places directory, reconciles them across sources, and verifies live business status.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
