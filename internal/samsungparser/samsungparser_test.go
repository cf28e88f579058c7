package samsungparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsererror"
)

func statementGrid() [][]string {
	return [][]string{
		{"삼성카드 이용대금명세서"},
		{"이용일", "가맹점명", "할인금액", "이용금액"},
		{"44927", "김밥천국", "", "6,000"},
		{"44928", "GS25", "0", "3,500"},
		{"", "해외이용 소계", "", ""},
		{"44926", "쿠팡", "", "30,000"},
		{"", "할부 소계", "", "30,000"},
		{"", "합계", "", "39,500"},
	}
}

func TestCanParse(t *testing.T) {
	p := New(nil)

	assert.True(t, p.CanParse("삼성카드_202301.xlsx", nil))
	assert.True(t, p.CanParse("samsung.xlsx", nil))
	assert.True(t, p.CanParse("data.xlsx", statementGrid()))

	hyundaiHeader := [][]string{{"이용일", "이용가맹점", "할인금액", "결제원금"}}
	assert.False(t, p.CanParse("data.xlsx", hyundaiHeader))
}

func TestParse(t *testing.T) {
	p := New(nil)

	outcome, err := p.Parse(statementGrid(), "삼성카드_202301.xlsx")
	require.NoError(t, err)
	require.True(t, outcome.OK)
	assert.Equal(t, models.SourceSamsung, outcome.SourceTag)

	// Serial day numbers come back as ISO dates; merchant names are verbatim.
	require.Len(t, outcome.Rows, 3)
	assert.Equal(t, models.CanonicalRow{
		Date:     "2023-01-01",
		Merchant: "김밥천국",
		Amount:   6000,
		Category: models.CategoryUncategorizedExpense,
		Kind:     models.KindExpense,
	}, outcome.Rows[0])
	assert.Equal(t, "2023-01-02", outcome.Rows[1].Date)
	assert.Equal(t, models.CanonicalRow{
		Date:          "2022-12-31",
		Merchant:      "쿠팡",
		Amount:        30000,
		Category:      models.CategoryInstallment,
		IsInstallment: true,
		Kind:          models.KindExpense,
	}, outcome.Rows[2])

	assert.Equal(t, int64(39500), outcome.TotalAmount)
	assert.Equal(t, outcome.SumRows(), outcome.TotalAmount)
	assert.Nil(t, outcome.BillingTotal)
}

func TestParseNoData(t *testing.T) {
	p := New(nil)

	grid := [][]string{{"이용일", "가맹점명", "할인금액", "이용금액"}}
	outcome, err := p.Parse(grid, "삼성카드.xlsx")

	var noDataErr *parsererror.NoDataError
	require.ErrorAs(t, err, &noDataErr)
	assert.Equal(t, string(parsererror.KindNoData), outcome.ErrorKind)
}
