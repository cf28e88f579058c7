package parsercommon

import (
	"strconv"
	"strings"

	"moabook/cardsheet/internal/amountutils"
	"moabook/cardsheet/internal/dateutils"
	"moabook/cardsheet/internal/models"
)

// VoucherLayout describes a regional-voucher export: a metadata preamble, a
// two-row header (main plus sub-header), then data rows keyed by a numeric
// sequence column. Voucher payments have no installment concept, so rows
// from this layout are never installment rows.
type VoucherLayout struct {
	SeqKeyword      string // numeric sequence column
	DateKeyword     string
	MerchantKeyword string
	AmountKeyword   string
	StatusKeyword   string
	SettledSentinel string // rows are included only at this status
}

// ParseVoucherRows walks the data rows below the two-row header and emits
// canonical expense rows for settled, positive-amount entries.
func ParseVoucherRows(grid [][]string, headerIdx int, layout VoucherLayout) []models.CanonicalRow {
	header := grid[headerIdx]
	seqCol := FindColumn(header, layout.SeqKeyword)
	dateCol := FindColumn(header, layout.DateKeyword)
	merchantCol := FindColumn(header, layout.MerchantKeyword)
	amountCol := FindColumn(header, layout.AmountKeyword)
	statusCol := FindColumn(header, layout.StatusKeyword)

	var rows []models.CanonicalRow

	// headerIdx+1 is the sub-header; data starts one row below it.
	for i := headerIdx + 2; i < len(grid); i++ {
		row := grid[i]

		seq, err := strconv.Atoi(strings.TrimSpace(CellAt(row, seqCol)))
		if err != nil || seq <= 0 {
			continue
		}
		if stripSpace(CellAt(row, statusCol)) != layout.SettledSentinel {
			continue
		}

		date, ok := dateutils.Normalize(CellAt(row, dateCol))
		if !ok {
			continue
		}
		merchant := strings.TrimSpace(CellAt(row, merchantCol))
		if merchant == "" {
			continue
		}
		amount := amountutils.Normalize(CellAt(row, amountCol))
		if amount <= 0 {
			continue
		}

		rows = append(rows, models.CanonicalRow{
			Date:     date,
			Merchant: merchant,
			Amount:   amount,
			Category: models.CategoryUncategorizedExpense,
			Kind:     models.KindExpense,
		})
	}

	return rows
}
