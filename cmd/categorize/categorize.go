// Package categorize implements re-classification of an already converted
// canonical CSV.
package categorize

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moabook/cardsheet/cmd/root"
	"moabook/cardsheet/internal/classify"
	"moabook/cardsheet/internal/export"
	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
)

var outputFile string

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize <records.csv>",
	Short: "Classify uncategorized rows of a canonical CSV",
	Long: `Categorize reads a canonical CSV produced by convert, sends the rows
still carrying a default category to the classifier, and writes the file back
with the assigned categories. Installment rows are never touched.`,
	Args: cobra.ExactArgs(1),
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file (default: overwrite input)")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	log := root.Log.WithField(logging.FieldFile, inputFile)

	if !root.Cfg.AI.Enabled {
		return fmt.Errorf("AI classification is disabled; enable it in the configuration")
	}

	records, err := export.ReadRecordsFromCSV(inputFile, root.Log)
	if err != nil {
		return err
	}

	classifier := classify.NewGeminiClassifier(root.Cfg.AI.APIKey, root.Cfg.AI.Model, root.Log)
	assigned := 0
	for _, kind := range []models.TransactionKind{models.KindExpense, models.KindIncome} {
		items := pendingItems(records, kind)
		if len(items) == 0 {
			continue
		}
		categories, err := classifier.Classify(cmd.Context(), kind, items)
		if err != nil {
			return err
		}
		for idx, category := range categories {
			if idx < 0 || idx >= len(records) {
				continue
			}
			records[idx].Category = category
			assigned++
		}
	}

	out := outputFile
	if out == "" {
		out = inputFile
	}
	if err := export.WriteRecordsToCSV(records, out, root.Log); err != nil {
		return err
	}

	log.WithField(logging.FieldCount, assigned).Info("Categorization completed")
	return nil
}

// pendingItems collects the records of a kind still carrying that kind's
// default category. Installment rows keep their structural category.
func pendingItems(records []models.Record, kind models.TransactionKind) []classify.Item {
	var items []classify.Item
	for i, record := range records {
		if record.Kind != kind || record.Category == models.CategoryInstallment {
			continue
		}
		if strings.TrimSpace(record.Category) != models.DefaultCategory(kind) {
			continue
		}
		items = append(items, classify.Item{Index: i, Merchant: record.MerchantName, Amount: record.Amount})
	}
	return items
}
