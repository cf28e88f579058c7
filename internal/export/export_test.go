package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moabook/cardsheet/internal/models"
)

func TestWriteRecordsToCSV(t *testing.T) {
	records := []models.Record{
		{
			TransactionDate: "2025-03-02",
			MerchantName:    "스타벅스",
			Amount:          4500,
			Category:        "카페/간식",
			Kind:            models.KindExpense,
			Source:          models.SourceHyundai,
			Owner:           models.OwnerShared,
			Provenance:      models.Provenance{RowIndex: 0, FileID: "file-1"},
		},
		{
			TransactionDate: "2025-03-10",
			MerchantName:    "3월 급여",
			Amount:          3000000,
			Category:        "급여",
			Kind:            models.KindIncome,
			Source:          models.SourceKB,
			Owner:           "지현",
			Provenance:      models.Provenance{RowIndex: 1, FileID: "file-1"},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteRecordsToCSV(records, path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "transaction_date")
	assert.Contains(t, lines[0], "file_id")
	assert.Contains(t, content, "스타벅스")
	assert.Contains(t, content, "4500")
	assert.Contains(t, content, "expense")
	assert.Contains(t, content, "급여")
	assert.Contains(t, content, "income")
}

func TestReadRecordsFromCSVRoundTrip(t *testing.T) {
	records := []models.Record{
		{
			TransactionDate: "2025-03-02",
			MerchantName:    "스타벅스",
			Amount:          4500,
			Category:        models.CategoryUncategorizedExpense,
			Kind:            models.KindExpense,
			Source:          models.SourceHyundai,
			Owner:           models.OwnerShared,
			Provenance:      models.Provenance{RowIndex: 0, FileID: "file-1"},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteRecordsToCSV(records, path, nil))

	loaded, err := ReadRecordsFromCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, records[0].MerchantName, loaded[0].MerchantName)
	assert.Equal(t, records[0].Amount, loaded[0].Amount)
	assert.Equal(t, records[0].Kind, loaded[0].Kind)
	assert.Equal(t, records[0].Source, loaded[0].Source)
	assert.Equal(t, records[0].Provenance.FileID, loaded[0].Provenance.FileID)
}

func TestReadRecordsFromCSVMissingFile(t *testing.T) {
	_, err := ReadRecordsFromCSV(filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.Error(t, err)
}

func TestWriteRecordsToCSVEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteRecordsToCSV(nil, path, nil)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
