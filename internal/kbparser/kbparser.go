// Package kbparser parses KB bank account export spreadsheets. Unlike the
// card statements this source carries both directions: the withdrawal column
// yields expense rows, the deposit column income rows. Bank exports have no
// installment concept.
package kbparser

import (
	"strings"

	"moabook/cardsheet/internal/amountutils"
	"moabook/cardsheet/internal/dateutils"
	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsercommon"
	"moabook/cardsheet/internal/parsererror"
)

var (
	filenameHints  = []string{"국민", "kb"}
	headerKeywords = []string{"거래일시", "출금액", "입금액"}
)

// Parser parses KB bank account exports.
type Parser struct {
	log logging.Logger
}

// New creates a KB export parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{log: logger}
}

// Name returns the source tag string.
func (p *Parser) Name() string {
	return string(models.SourceKB)
}

// CanParse probes filename hints first, then the full header keyword set.
func (p *Parser) CanParse(filename string, headerRows [][]string) bool {
	lower := strings.ToLower(filename)
	for _, hint := range filenameHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return parsercommon.HasAllKeywords(headerRows, headerKeywords)
}

// Parse converts the raw grid into canonical rows of both kinds.
func (p *Parser) Parse(grid [][]string, filename string) (*models.ParseOutcome, error) {
	log := p.log.WithField(logging.FieldFile, filename).WithField(logging.FieldParser, p.Name())

	headerIdx := parsercommon.FindHeaderRow(grid, headerKeywords, parsercommon.HeaderScanWindow)
	if headerIdx < 0 {
		err := &parsererror.HeaderNotFoundError{
			FilePath: filename,
			Parser:   p.Name(),
			Keywords: headerKeywords,
			Window:   parsercommon.HeaderScanWindow,
		}
		return models.FailedOutcome(models.SourceKB, string(parsererror.KindHeaderNotFound), err.Error()), err
	}

	header := grid[headerIdx]
	dateCol := parsercommon.FindColumn(header, "거래일시")
	descCol := parsercommon.FindColumn(header, "내용")
	withdrawalCol := parsercommon.FindColumn(header, "출금액")
	depositCol := parsercommon.FindColumn(header, "입금액")

	var rows []models.CanonicalRow

	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		label := parsercommon.CellAt(row, descCol)
		if parsercommon.IsSummaryRow(label) {
			continue
		}

		date, ok := dateutils.Normalize(parsercommon.CellAt(row, dateCol))
		if !ok {
			continue
		}

		merchant := strings.TrimSpace(label)
		if merchant == "" {
			continue
		}

		withdrawal := amountutils.Normalize(parsercommon.CellAt(row, withdrawalCol))
		deposit := amountutils.Normalize(parsercommon.CellAt(row, depositCol))

		switch {
		case withdrawal > 0:
			rows = append(rows, models.CanonicalRow{
				Date:     date,
				Merchant: merchant,
				Amount:   withdrawal,
				Category: models.CategoryUncategorizedExpense,
				Kind:     models.KindExpense,
			})
		case deposit > 0:
			rows = append(rows, models.CanonicalRow{
				Date:     date,
				Merchant: merchant,
				Amount:   deposit,
				Category: models.CategoryUncategorizedIncome,
				Kind:     models.KindIncome,
			})
		}
	}

	if len(rows) == 0 {
		err := &parsererror.NoDataError{FilePath: filename, Parser: p.Name()}
		return models.FailedOutcome(models.SourceKB, string(parsererror.KindNoData), err.Error()), err
	}

	outcome := &models.ParseOutcome{
		OK:        true,
		Rows:      rows,
		SourceTag: models.SourceKB,
	}
	outcome.TotalAmount = outcome.SumRows()

	log.WithField(logging.FieldCount, len(rows)).Info("Parsed KB bank export")
	return outcome, nil
}
