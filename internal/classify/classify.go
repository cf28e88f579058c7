// Package classify prepares parsed rows for the external classification
// collaborator and merges its results back by stable row index. Rows are
// never mutated here; everything this package produces is an auxiliary
// index/category structure.
package classify

import (
	"moabook/cardsheet/internal/models"
)

// Mode selects which rows are queued for classification.
type Mode string

const (
	// ModeAll queues every non-installment row.
	ModeAll Mode = "all"
	// ModeDefaultOnly queues only rows still carrying the generic default
	// category for their kind; everything else is recorded as preset and left
	// untouched.
	ModeDefaultOnly Mode = "defaultOnly"
)

// Item is one classification request entry, keyed by the row's stable index.
type Item struct {
	Index    int
	Merchant string
	Amount   int64
}

// Partition splits parsed rows into the two kind-specific classification
// queues plus the index sets excluded from classification. Installment rows
// never enter either queue and never lose their forced category.
type Partition struct {
	Expense            []Item
	Income             []Item
	InstallmentIndices map[int]bool
	PresetIndices      map[int]bool
}

// Prepare partitions rows by classification need. Kind-exclusive queueing is
// what guarantees the expense and income result maps are disjoint in key
// space.
func Prepare(rows []models.CanonicalRow, mode Mode) Partition {
	p := Partition{
		InstallmentIndices: make(map[int]bool),
		PresetIndices:      make(map[int]bool),
	}

	for i, row := range rows {
		if row.IsInstallment {
			p.InstallmentIndices[i] = true
			continue
		}
		if mode == ModeDefaultOnly && row.Category != models.DefaultCategory(row.Kind) {
			p.PresetIndices[i] = true
			continue
		}

		item := Item{Index: i, Merchant: row.Merchant, Amount: row.Amount}
		if row.Kind == models.KindIncome {
			p.Income = append(p.Income, item)
		} else {
			p.Expense = append(p.Expense, item)
		}
	}

	return p
}

// MergeCategoryMaps unions the expense-kind and income-kind classification
// results. No conflict resolution exists here on purpose: the partitioning in
// Prepare is mutually exclusive by transaction kind, so the key spaces are
// disjoint by construction (asserted in tests, not handled at runtime).
func MergeCategoryMaps(expense, income map[int]string) map[int]string {
	merged := make(map[int]string, len(expense)+len(income))
	for idx, category := range expense {
		merged[idx] = category
	}
	for idx, category := range income {
		merged[idx] = category
	}
	return merged
}
