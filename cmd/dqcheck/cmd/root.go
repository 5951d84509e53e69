// Package cmd wires the dqcheck command line: profile and validate
// subcommands over CSV/xlsx files.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/D-Vella/Data-Quality-Checker/internal/config"
	"github.com/D-Vella/Data-Quality-Checker/internal/logging"
)

var (
	cfg    config.Config
	logger *zap.Logger

	flagFormat  string
	flagWorkers int
)

var rootCmd = &cobra.Command{
	Use:   "dqcheck",
	Short: "Profile and validate tabular datasets",
	Long: `dqcheck computes per-column statistics of CSV and Excel files and
evaluates declarative rule suites against their columns, reporting
pass/fail results to the console or as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = flagFormat
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = flagWorkers
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel, cfg.Development)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "report format: console or json")
	rootCmd.PersistentFlags().IntVarP(&flagWorkers, "workers", "w", 1, "concurrent evaluation workers (1 = synchronous)")
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dqcheck: %v\n", err)
		return err
	}
	return nil
}
