// Package parsercommon provides the machinery shared by the per-source
// statement parsers: header location, column lookup, subtotal detection,
// merchant-name cleanup and amount-column resolution.
package parsercommon

import (
	"regexp"
	"strings"

	"moabook/cardsheet/internal/amountutils"
)

// HeaderScanWindow is how many leading rows a parser inspects when locating
// its header row.
const HeaderScanWindow = 20

// summaryMarkers are the label words that mark subtotal/total lines. Rows
// carrying them are structural, not transactions.
var summaryMarkers = []string{"소계", "합계", "총계"}

// stripSpace removes all whitespace so marker matching is insensitive to the
// erratic padding these exports use.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// FindHeaderRow scans the first window rows for one containing every keyword
// of the source's required set. Returns -1 when no row qualifies.
func FindHeaderRow(grid [][]string, keywords []string, window int) int {
	limit := len(grid)
	if window < limit {
		limit = window
	}
	for i := 0; i < limit; i++ {
		if rowHasAllKeywords(grid[i], keywords) {
			return i
		}
	}
	return -1
}

// HasAllKeywords reports whether any of the candidate header rows contains
// the full keyword set. Requiring all keywords, not just one, keeps one
// source's header from satisfying another source's probe.
func HasAllKeywords(headerRows [][]string, keywords []string) bool {
	for _, row := range headerRows {
		if rowHasAllKeywords(row, keywords) {
			return true
		}
	}
	return false
}

func rowHasAllKeywords(row []string, keywords []string) bool {
	joined := stripSpace(strings.Join(row, " "))
	for _, kw := range keywords {
		if !strings.Contains(joined, kw) {
			return false
		}
	}
	return true
}

// FindColumn returns the index of the first header cell containing keyword,
// or -1.
func FindColumn(header []string, keyword string) int {
	for i, cell := range header {
		if strings.Contains(stripSpace(cell), keyword) {
			return i
		}
	}
	return -1
}

// CellAt is a bounds-safe row accessor; short rows read as empty cells.
func CellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// IsSummaryRow reports whether the label cell, after whitespace removal,
// carries a subtotal/total marker word.
func IsSummaryRow(label string) bool {
	clean := stripSpace(label)
	if clean == "" {
		return false
	}
	for _, marker := range summaryMarkers {
		if strings.Contains(clean, marker) {
			return true
		}
	}
	return false
}

// Merchant cells on some statements concatenate the name with a trailing
// comma-grouped amount ("우지커피판교w시티점3,300"), sometimes preceded by a
// truncation artifact when the name was cut off. The suffix patterns are
// ordered longest-first so the truncated form wins over a bare amount.
var merchantSuffixPatterns = []*regexp.Regexp{
	// truncation marker plus garbled amount remainder
	regexp.MustCompile(`(…|\.{2,})[\d,]*$`),
	// comma-grouped amount run
	regexp.MustCompile(`\d{1,3}(?:,\d{3})+$`),
}

// StripAmountSuffix separates an embedded trailing amount from a merchant
// cell, keeping the remainder as the display name. Cells without an
// amount-shaped suffix pass through verbatim (trimmed).
func StripAmountSuffix(cell string) string {
	s := strings.TrimSpace(cell)
	for _, pattern := range merchantSuffixPatterns {
		if loc := pattern.FindStringIndex(s); loc != nil {
			return strings.TrimSpace(s[:loc[0]])
		}
	}
	return s
}

// ResolveAmount picks the row amount from the two candidate columns: the
// discount/adjustment column wins when non-zero, otherwise the payment
// column.
func ResolveAmount(discountCell, paymentCell string) int64 {
	if amount := amountutils.Normalize(discountCell); amount != 0 {
		return amount
	}
	return amountutils.Normalize(paymentCell)
}
