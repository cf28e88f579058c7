// Package lotteparser parses Lotte card statement spreadsheets. Lotte exports
// use two-digit YY.MM.DD usage dates and, like Hyundai, embed a trailing
// amount in the merchant cell.
package lotteparser

import (
	"strings"

	"moabook/cardsheet/internal/dateutils"
	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsercommon"
	"moabook/cardsheet/internal/parsererror"
)

var (
	filenameHints  = []string{"롯데", "lotte"}
	headerKeywords = []string{"이용일자", "이용가맹점"}
)

const (
	installmentStartMarker = "해외이용소계"
	installmentEndMarker   = "할부소계"
)

// Parser parses Lotte card statements.
type Parser struct {
	log logging.Logger
}

// New creates a Lotte statement parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{log: logger}
}

// Name returns the source tag string.
func (p *Parser) Name() string {
	return string(models.SourceLotte)
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

// Parse converts the raw grid into canonical expense rows.
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
		return models.FailedOutcome(models.SourceLotte, string(parsererror.KindHeaderNotFound), err.Error()), err
	}

	header := grid[headerIdx]
	dateCol := parsercommon.FindColumn(header, "이용일자")
	merchantCol := parsercommon.FindColumn(header, "이용가맹점")
	discountCol := parsercommon.FindColumn(header, "할인금액")
	paymentCol := parsercommon.FindColumn(header, "이용금액")

	scanner := parsercommon.NewSectionScanner(installmentStartMarker, installmentEndMarker)
	var rows []models.CanonicalRow

	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		label := parsercommon.CellAt(row, merchantCol)

		if scanner.Observe(label) {
			continue
		}
		if scanner.Finished() {
			break
		}
		if parsercommon.IsSummaryRow(label) {
			continue
		}

		date, ok := dateutils.Normalize(parsercommon.CellAt(row, dateCol))
		if !ok {
			continue
		}

		merchant := parsercommon.StripAmountSuffix(label)
		if merchant == "" {
			continue
		}

		amount := parsercommon.ResolveAmount(
			parsercommon.CellAt(row, discountCol),
			parsercommon.CellAt(row, paymentCol),
		)
		if amount <= 0 {
			continue
		}

		category := models.CategoryUncategorizedExpense
		if scanner.InInstallment() {
			category = models.CategoryInstallment
		}

		rows = append(rows, models.CanonicalRow{
			Date:          date,
			Merchant:      merchant,
			Amount:        amount,
			Category:      category,
			IsInstallment: scanner.InInstallment(),
			Kind:          models.KindExpense,
		})
	}

	if len(rows) == 0 {
		err := &parsererror.NoDataError{FilePath: filename, Parser: p.Name()}
		return models.FailedOutcome(models.SourceLotte, string(parsererror.KindNoData), err.Error()), err
	}

	outcome := &models.ParseOutcome{
		OK:        true,
		Rows:      rows,
		SourceTag: models.SourceLotte,
	}
	outcome.TotalAmount = outcome.SumRows()

	log.WithField(logging.FieldCount, len(rows)).Info("Parsed Lotte card statement")
	return outcome, nil
}
