package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/D-Vella/Data-Quality-Checker/adapters/filesource"
	"github.com/D-Vella/Data-Quality-Checker/internal/profiling"
	"github.com/D-Vella/Data-Quality-Checker/internal/report"
)

var flagPartition []string

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Compute per-column statistics of a CSV or xlsx file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringSliceVar(&flagPartition, "partition-advice", nil, "columns to score as partitioning keys")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	path := args[0]
	tbl, coercions, err := filesource.NewReader().Read(path)
	if err != nil {
		return err
	}
	logger.Info("loaded table",
		zap.String("file", path),
		zap.Int("rows", tbl.RowCount()),
		zap.Int("columns", tbl.ColumnCount()))
	for _, cr := range coercions {
		if cr.Dropped > 0 {
			logger.Warn("cells dropped during coercion",
				zap.String("column", cr.Column),
				zap.String("dtype", string(cr.DType)),
				zap.Int("dropped", cr.Dropped))
		}
	}

	profiler := profiling.New()
	profiles, err := profiler.ProfileAllContext(context.Background(), tbl, cfg.Workers)
	if err != nil {
		return err
	}
	summary := profiler.Summary(tbl)

	if cfg.Format == "json" {
		return report.NewJSONReporter(os.Stdout, cfg.JSONIndent).ReportProfile(profiles, summary, tbl.ColumnNames())
	}

	console := report.NewConsoleReporter(os.Stdout)
	if err := console.ReportProfile(profiles, summary, tbl.ColumnNames()); err != nil {
		return err
	}
	for _, column := range flagPartition {
		advice, err := profiler.PartitionAdvice(tbl, column)
		if err != nil {
			return err
		}
		if err := console.ReportPartitionAdvice(advice); err != nil {
			return err
		}
	}
	return nil
}
