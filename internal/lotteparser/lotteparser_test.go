package lotteparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsererror"
)

func statementGrid() [][]string {
	return [][]string{
		{"롯데카드 이용내역"},
		{"이용일자", "이용가맹점", "할인금액", "이용금액"},
		{"25.03.02", "우지커피판교w시티점3,300", "", "3,300"},
		{"25.03.05", "롯데마트", "0", "52,000"},
		{"", "합계", "", "55,300"},
	}
}

func TestCanParse(t *testing.T) {
	p := New(nil)

	assert.True(t, p.CanParse("롯데카드_202503.xlsx", nil))
	assert.True(t, p.CanParse("lotte.xlsx", nil))
	assert.True(t, p.CanParse("data.xlsx", statementGrid()))

	kbHeader := [][]string{{"거래일시", "내용", "출금액", "입금액"}}
	assert.False(t, p.CanParse("data.xlsx", kbHeader))
}

func TestParse(t *testing.T) {
	p := New(nil)

	outcome, err := p.Parse(statementGrid(), "롯데카드_202503.xlsx")
	require.NoError(t, err)
	require.True(t, outcome.OK)
	assert.Equal(t, models.SourceLotte, outcome.SourceTag)

	require.Len(t, outcome.Rows, 2)
	assert.Equal(t, models.CanonicalRow{
		Date:     "2025-03-02",
		Merchant: "우지커피판교w시티점",
		Amount:   3300,
		Category: models.CategoryUncategorizedExpense,
		Kind:     models.KindExpense,
	}, outcome.Rows[0])
	assert.Equal(t, models.CanonicalRow{
		Date:     "2025-03-05",
		Merchant: "롯데마트",
		Amount:   52000,
		Category: models.CategoryUncategorizedExpense,
		Kind:     models.KindExpense,
	}, outcome.Rows[1])

	assert.Equal(t, int64(55300), outcome.TotalAmount)
	assert.Equal(t, outcome.SumRows(), outcome.TotalAmount)
}

func TestParseHeaderNotFound(t *testing.T) {
	p := New(nil)

	outcome, err := p.Parse([][]string{{"내용 없음"}}, "롯데카드.xlsx")

	var headerErr *parsererror.HeaderNotFoundError
	require.ErrorAs(t, err, &headerErr)
	assert.Equal(t, string(parsererror.KindHeaderNotFound), outcome.ErrorKind)
}
