package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/D-Vella/Data-Quality-Checker/adapters/filesource"
	"github.com/D-Vella/Data-Quality-Checker/adapters/rulespec"
	"github.com/D-Vella/Data-Quality-Checker/internal/report"
	"github.com/D-Vella/Data-Quality-Checker/internal/validation"
)

var flagRules string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Evaluate a YAML rule suite against a CSV or xlsx file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&flagRules, "rules", "r", "", "YAML rule suite (defaults to DQCHECK_RULES)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	rulesPath := flagRules
	if rulesPath == "" {
		rulesPath = cfg.RulesFile
	}
	if rulesPath == "" {
		return errors.New("no rule suite given: pass --rules or set DQCHECK_RULES")
	}

	suite, err := rulespec.Load(rulesPath)
	if err != nil {
		return err
	}
	tbl, _, err := filesource.NewReader().Read(args[0])
	if err != nil {
		return err
	}
	logger.Info("running rule suite",
		zap.String("file", args[0]),
		zap.String("rules", rulesPath),
		zap.Int("checks", len(suite.Checks)))

	v := validation.New(tbl)
	if err := suite.Apply(v); err != nil {
		return err
	}
	results, err := v.RunContext(context.Background(), cfg.Workers)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		err = report.NewJSONReporter(os.Stdout, cfg.JSONIndent).ReportValidation(results)
	} else {
		err = report.NewConsoleReporter(os.Stdout).ReportValidation(results)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if !res.Passed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}
