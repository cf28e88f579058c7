package onnuriparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsererror"
)

func exportGrid() [][]string {
	return [][]string{
		{"온누리상품권 사용내역"},
		{"순번", "결제일", "가맹점", "결제금액", "상태"},
		{"", "일자", "상호", "금액", ""},
		{"1", "2025-03-02", "반찬가게", "15,000", "결제완료"},
		{"2", "2025-03-05", "과일가게", "8,000", "결제취소"},
		{"3", "2025-03-08", "정육점", "22,000", "결제완료"},
	}
}

func TestCanParse(t *testing.T) {
	p := New(nil)

	assert.True(t, p.CanParse("온누리_202503.xlsx", nil))
	assert.True(t, p.CanParse("onnuri.xlsx", nil))
	assert.True(t, p.CanParse("data.xlsx", exportGrid()))

	seongnamHeader := [][]string{{"순번", "거래일자", "가맹점", "거래금액", "처리상태"}}
	assert.False(t, p.CanParse("data.xlsx", seongnamHeader))
}

func TestParse(t *testing.T) {
	p := New(nil)

	outcome, err := p.Parse(exportGrid(), "온누리_202503.xlsx")
	require.NoError(t, err)
	require.True(t, outcome.OK)
	assert.Equal(t, models.SourceOnnuri, outcome.SourceTag)

	// The cancelled payment is excluded; only settled rows survive.
	require.Len(t, outcome.Rows, 2)
	assert.Equal(t, "반찬가게", outcome.Rows[0].Merchant)
	assert.Equal(t, "정육점", outcome.Rows[1].Merchant)
	assert.Equal(t, int64(37000), outcome.TotalAmount)
	for _, row := range outcome.Rows {
		assert.Equal(t, models.KindExpense, row.Kind)
		assert.False(t, row.IsInstallment)
	}
}

func TestParseNoSettledRows(t *testing.T) {
	p := New(nil)

	grid := [][]string{
		{"순번", "결제일", "가맹점", "결제금액", "상태"},
		{""},
		{"1", "2025-03-02", "반찬가게", "15,000", "결제취소"},
	}
	outcome, err := p.Parse(grid, "온누리.xlsx")

	var noDataErr *parsererror.NoDataError
	require.ErrorAs(t, err, &noDataErr)
	assert.Equal(t, string(parsererror.KindNoData), outcome.ErrorKind)
}
