// Package billing resolves the billing month a statement file represents and
// the date override applied to installment rows.
package billing

import (
	"fmt"
	"regexp"
	"strconv"

	"moabook/cardsheet/internal/models"
)

// Filename patterns tried in order: a bare YYYYMM run, a separated
// YYYY-MM/YYYY_MM pair, then the localized "<year>년 <month>월" form.
var (
	reCompact   = regexp.MustCompile(`(20\d{2})(0[1-9]|1[0-2])`)
	reSeparated = regexp.MustCompile(`(20\d{2})[-_](\d{1,2})`)
	reKorean    = regexp.MustCompile(`(20\d{2})년\s*(\d{1,2})월`)
)

// Installment charges are rewritten to the statement cycle's fixed billing
// day so recurring rows land in the correct reporting period.
const installmentDay = 25

// MonthFromFilename extracts the billing month ("YYYY-MM") from a statement
// filename. Returns false when no pattern matches.
func MonthFromFilename(filename string) (string, bool) {
	for _, re := range []*regexp.Regexp{reCompact, reSeparated, reKorean} {
		if m := re.FindStringSubmatch(filename); m != nil {
			month, err := strconv.Atoi(m[2])
			if err != nil || month < 1 || month > 12 {
				continue
			}
			return fmt.Sprintf("%s-%02d", m[1], month), true
		}
	}
	return "", false
}

// MonthFromRows derives the billing month from the transaction set itself.
// Installment rows are excluded: their dates are historical purchase dates,
// not representative of the statement's billing period. The maximal remaining
// date, truncated to year-month, wins. Returns false when nothing is left
// after exclusion.
func MonthFromRows(rows []models.CanonicalRow) (string, bool) {
	var max string
	for _, row := range rows {
		if row.IsInstallment {
			continue
		}
		if row.Date > max {
			max = row.Date
		}
	}
	if len(max) < 7 {
		return "", false
	}
	return max[:7], true
}

// InstallmentDate computes the transaction date override for an installment
// row: the 25th of the billing month, or the 25th of the row's own year-month
// when no billing month could be resolved.
func InstallmentDate(date, billingMonth string) string {
	if billingMonth != "" {
		return fmt.Sprintf("%s-%02d", billingMonth, installmentDay)
	}
	if len(date) >= 7 {
		return fmt.Sprintf("%s-%02d", date[:7], installmentDay)
	}
	return date
}
