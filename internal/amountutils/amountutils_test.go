package amountutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected int64
	}{
		{name: "plain digits", cell: "1500", expected: 1500},
		{name: "comma grouped", cell: "1,234,567", expected: 1234567},
		{name: "currency suffix", cell: "45,000원", expected: 45000},
		{name: "leading minus", cell: "-300", expected: -300},
		{name: "filled triangle marker", cell: "▲5,000", expected: -5000},
		{name: "hollow triangle marker", cell: "△1,000원", expected: -1000},
		{name: "decimal rounds up", cell: "12.7", expected: 13},
		{name: "decimal rounds down", cell: "12.4", expected: 12},
		{name: "surrounding whitespace", cell: "  2,500 ", expected: 2500},
		{name: "empty cell", cell: "", expected: 0},
		{name: "whitespace only", cell: "   ", expected: 0},
		{name: "no digits at all", cell: "원", expected: 0},
		{name: "marker without digits", cell: "-", expected: 0},
		{name: "zero", cell: "0", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.cell))
		})
	}
}

func TestNormalizeNeverNegativeZero(t *testing.T) {
	// A marker followed by a zero amount must stay plain zero.
	assert.Equal(t, int64(0), Normalize("▲0"))
}
