// Package export writes ingested records to the canonical CSV format
// consumed by the persistence side.
package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
)

// csvRecord is the flat CSV projection of a Record; provenance is reduced to
// the row index and file reference.
type csvRecord struct {
	TransactionDate string `csv:"transaction_date"`
	MerchantName    string `csv:"merchant_name"`
	Amount          int64  `csv:"amount"`
	Category        string `csv:"category"`
	Kind            string `csv:"kind"`
	Source          string `csv:"source"`
	Owner           string `csv:"owner"`
	RowIndex        int    `csv:"row_index"`
	FileID          string `csv:"file_id"`
}

func (r *csvRecord) toRecord() models.Record {
	return models.Record{
		TransactionDate: r.TransactionDate,
		MerchantName:    r.MerchantName,
		Amount:          r.Amount,
		Category:        r.Category,
		Kind:            models.TransactionKind(r.Kind),
		Source:          models.SourceTag(r.Source),
		Owner:           r.Owner,
		Provenance: models.Provenance{
			RowIndex: r.RowIndex,
			FileID:   r.FileID,
		},
	}
}

// ReadRecordsFromCSV reads a canonical CSV back into records. Provenance is
// restored to the row index and file reference only; the original parsed row
// is not part of the CSV projection.
func ReadRecordsFromCSV(path string, logger logging.Logger) ([]models.Record, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	file, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	var rows []*csvRecord
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Debug("Read canonical CSV")
	return records, nil
}

// WriteRecordsToCSV writes records to path in the canonical column order.
func WriteRecordsToCSV(records []models.Record, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(records) == 0 {
		return fmt.Errorf("no records to write")
	}

	rows := make([]*csvRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &csvRecord{
			TransactionDate: record.TransactionDate,
			MerchantName:    record.MerchantName,
			Amount:          record.Amount,
			Category:        record.Category,
			Kind:            string(record.Kind),
			Source:          string(record.Source),
			Owner:           record.Owner,
			RowIndex:        record.Provenance.RowIndex,
			FileID:          record.Provenance.FileID,
		})
	}

	file, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close output file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Wrote canonical CSV")
	return nil
}
