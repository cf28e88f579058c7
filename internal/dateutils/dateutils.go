// Package dateutils normalizes the date encodings found across statement
// sources into ISO YYYY-MM-DD strings.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the canonical output layout.
const DateLayoutISO = "2006-01-02"

// Excel serial day numbers count from the 1899-12-30 anchor. Values outside
// this window are rejected as non-dates (small sequence numbers, amounts and
// the like also arrive as bare numerals).
const (
	serialMin = 20000 // 1954-09-29
	serialMax = 60000 // 2064-04-06
)

var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// koreanDate matches free text of the form "<year>년 <month>월 <day>일",
// single-digit month/day allowed.
var koreanDate = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)

// textLayouts are tried in order against the cell with any trailing time
// component removed.
var textLayouts = []string{
	DateLayoutISO, // YYYY-MM-DD
	"2006.01.02",
	"2006/01/02",
	"06.01.02", // YY.MM.DD, two-digit year
}

// Normalize converts a raw cell into an ISO date string. The boolean result
// is false when the cell matches no known encoding; the caller decides
// whether that invalidates the row.
func Normalize(cell string) (string, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return "", false
	}

	if m := koreanDate.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if !validYMD(year, month, day) {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}

	if serial, ok := parseSerial(s); ok {
		return serialEpoch.AddDate(0, 0, serial).Format(DateLayoutISO), true
	}

	// Drop a trailing time component ("2025.03.09 14:22:01").
	if idx := strings.IndexAny(s, " \t"); idx > 0 {
		s = s[:idx]
	}

	for _, layout := range textLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayoutISO), true
		}
	}

	return "", false
}

// parseSerial detects spreadsheet serial day numbers: a bare numeral whose
// magnitude is plausible for a modern date.
func parseSerial(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	serial := int(f)
	if serial < serialMin || serial > serialMax {
		return 0, false
	}
	return serial, true
}

func validYMD(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	return year >= 1900 && year <= 2200
}
