// Package amountutils normalizes raw spreadsheet amount cells into signed
// whole-currency integers.
package amountutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Negative markers seen across statement sources: a plain minus, or the
// triangle "decrease" glyphs some issuers print instead.
var negativeMarkers = []string{"-", "▲", "△"}

// Normalize converts a raw cell value into a signed integer amount.
//
// The input is trimmed; an empty cell yields 0. A leading minus or triangle
// marker flags the value negative. Every remaining rune that is not a digit
// or a decimal point is stripped, and decimal values are rounded to the
// nearest integer. A cell with no digits at all yields 0. Normalize never
// fails: malformed cells degrade to 0 and the caller's non-positive-amount
// rule excludes the row.
func Normalize(cell string) int64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}

	negative := false
	for _, marker := range negativeMarkers {
		if strings.HasPrefix(s, marker) {
			negative = true
			s = strings.TrimPrefix(s, marker)
			break
		}
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if !strings.ContainsAny(cleaned, "0123456789") {
		return 0
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	value := dec.Round(0).IntPart()
	if negative {
		return -value
	}
	return value
}
