package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected string
		ok       bool
	}{
		{name: "iso date", cell: "2025-03-09", expected: "2025-03-09", ok: true},
		{name: "dotted date", cell: "2025.03.09", expected: "2025-03-09", ok: true},
		{name: "slashed date", cell: "2025/03/09", expected: "2025-03-09", ok: true},
		{name: "two digit year", cell: "25.03.09", expected: "2025-03-09", ok: true},
		{name: "trailing time stripped", cell: "2025.03.09 14:22:01", expected: "2025-03-09", ok: true},
		{name: "korean date", cell: "2025년 3월 9일", expected: "2025-03-09", ok: true},
		{name: "korean date no spaces", cell: "2025년3월9일", expected: "2025-03-09", ok: true},
		{name: "serial number", cell: "44927", expected: "2023-01-01", ok: true},
		{name: "serial with fraction", cell: "44927.5", expected: "2023-01-01", ok: true},
		{name: "serial below window", cell: "123", ok: false},
		{name: "serial above window", cell: "99999", ok: false},
		{name: "korean date invalid month", cell: "2025년 13월 1일", ok: false},
		{name: "empty cell", cell: "", ok: false},
		{name: "whitespace only", cell: "  ", ok: false},
		{name: "free text", cell: "스타벅스", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.cell)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
