package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moabook/cardsheet/internal/models"
)

func sampleRows() []models.CanonicalRow {
	return []models.CanonicalRow{
		{Date: "2025-03-02", Merchant: "스타벅스", Amount: 4500, Category: models.CategoryUncategorizedExpense, Kind: models.KindExpense},
		{Date: "2025-03-05", Merchant: "회사", Amount: 3000000, Category: models.CategoryUncategorizedIncome, Kind: models.KindIncome},
		{Date: "2025-01-10", Merchant: "애플코리아", Amount: 120000, Category: models.CategoryInstallment, IsInstallment: true, Kind: models.KindExpense},
		{Date: "2025-03-08", Merchant: "이마트", Amount: 45000, Category: "쇼핑", Kind: models.KindExpense},
	}
}

func TestPrepareModeAll(t *testing.T) {
	p := Prepare(sampleRows(), ModeAll)

	assert.Equal(t, []Item{
		{Index: 0, Merchant: "스타벅스", Amount: 4500},
		{Index: 3, Merchant: "이마트", Amount: 45000},
	}, p.Expense)
	assert.Equal(t, []Item{
		{Index: 1, Merchant: "회사", Amount: 3000000},
	}, p.Income)
	assert.Equal(t, map[int]bool{2: true}, p.InstallmentIndices)
	assert.Empty(t, p.PresetIndices)
}

func TestPrepareModeDefaultOnly(t *testing.T) {
	p := Prepare(sampleRows(), ModeDefaultOnly)

	// The row already carrying a real category is preset, not queued.
	assert.Equal(t, []Item{
		{Index: 0, Merchant: "스타벅스", Amount: 4500},
	}, p.Expense)
	assert.Equal(t, []Item{
		{Index: 1, Merchant: "회사", Amount: 3000000},
	}, p.Income)
	assert.Equal(t, map[int]bool{2: true}, p.InstallmentIndices)
	assert.Equal(t, map[int]bool{3: true}, p.PresetIndices)
}

func TestPrepareEmptyRows(t *testing.T) {
	p := Prepare(nil, ModeAll)
	assert.Empty(t, p.Expense)
	assert.Empty(t, p.Income)
	assert.Empty(t, p.InstallmentIndices)
	assert.Empty(t, p.PresetIndices)
}

func TestPrepareQueuesAreIndexDisjoint(t *testing.T) {
	p := Prepare(sampleRows(), ModeAll)

	seen := make(map[int]bool)
	for _, item := range p.Expense {
		assert.False(t, seen[item.Index])
		seen[item.Index] = true
	}
	for _, item := range p.Income {
		assert.False(t, seen[item.Index])
		seen[item.Index] = true
	}
	for idx := range p.InstallmentIndices {
		assert.False(t, seen[idx])
	}
}

func TestMergeCategoryMaps(t *testing.T) {
	merged := MergeCategoryMaps(
		map[int]string{0: "식비", 3: "쇼핑"},
		map[int]string{1: "급여"},
	)
	assert.Equal(t, map[int]string{0: "식비", 1: "급여", 3: "쇼핑"}, merged)
}

func TestMergeCategoryMapsEmptyInputs(t *testing.T) {
	merged := MergeCategoryMaps(nil, nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
