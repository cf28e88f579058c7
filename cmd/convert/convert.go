// Package convert implements the statement conversion command.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"moabook/cardsheet/cmd/root"
	"moabook/cardsheet/internal/classify"
	"moabook/cardsheet/internal/export"
	"moabook/cardsheet/internal/ingest"
	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/parser"
	"moabook/cardsheet/internal/store"
)

var outputFile string

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert <statement.xlsx>",
	Short: "Convert a statement spreadsheet to canonical CSV",
	Long: `Convert reads one statement spreadsheet, detects its source format,
normalizes it into canonical transactions and writes them as CSV. With AI
enabled in the configuration, rows are classified before writing.`,
	Args: cobra.ExactArgs(1),
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file (default: input name with .csv)")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	log := root.Log.WithField(logging.FieldFile, inputFile)

	data, err := os.ReadFile(inputFile) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	rules := store.NewRuleStore(root.Cfg.Rules.ExpenseFile, root.Cfg.Rules.IncomeFile, root.Log)
	if err := rules.Load(); err != nil {
		log.WithError(err).Warn("Failed to load mapping rules, continuing without them")
	}

	var classifier classify.Classifier
	if root.Cfg.AI.Enabled {
		classifier = classify.NewGeminiClassifier(root.Cfg.AI.APIKey, root.Cfg.AI.Model, root.Log)
	}

	service := ingest.New(root.Cfg, parser.DefaultRegistry(root.Log), classifier, rules, root.Log)
	result, err := service.Ingest(cmd.Context(), data, filepath.Base(inputFile))
	if err != nil {
		return err
	}

	outcome := result.Outcome
	if outcome.BillingTotal != nil && *outcome.BillingTotal != outcome.TotalAmount {
		log.WithFields(
			logging.Field{Key: "usage_total", Value: outcome.TotalAmount},
			logging.Field{Key: "billing_total", Value: *outcome.BillingTotal},
		).Warn("Usage total does not match the statement's billed total")
	}

	out := outputFile
	if out == "" {
		out = strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + ".csv"
	}
	if err := export.WriteRecordsToCSV(result.Records, out, root.Log); err != nil {
		return err
	}

	log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(result.Records)},
		logging.Field{Key: logging.FieldMonth, Value: result.BillingMonth},
	).Info("Conversion completed")
	return nil
}
