package ingest

import (
	"moabook/cardsheet/internal/billing"
	"moabook/cardsheet/internal/models"
)

// BuildRecords assembles the final persistable records. Installment rows get
// the billing-cycle date override and the forced installment category; every
// other row takes its classified category, falling back to the row's own
// parsed category when the map omits its index (preset rows, classifier
// omissions). Parsed rows are read, never mutated.
func BuildRecords(rows []models.CanonicalRow, categories map[int]string, installmentIndices map[int]bool, billingMonth, fileID, owner string, source models.SourceTag) []models.Record {
	records := make([]models.Record, 0, len(rows))

	for i, row := range rows {
		date := row.Date
		category := row.Category
		if installmentIndices[i] {
			date = billing.InstallmentDate(row.Date, billingMonth)
			category = models.CategoryInstallment
		} else if assigned, found := categories[i]; found {
			category = assigned
		}

		records = append(records, models.Record{
			TransactionDate: date,
			MerchantName:    row.Merchant,
			Amount:          row.Amount,
			Category:        category,
			Kind:            row.Kind,
			Source:          source,
			Owner:           owner,
			Provenance: models.Provenance{
				OriginalRow: row,
				RowIndex:    i,
				FileID:      fileID,
			},
		})
	}

	return records
}
