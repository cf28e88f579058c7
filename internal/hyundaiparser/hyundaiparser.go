// Package hyundaiparser parses Hyundai card statement spreadsheets into
// canonical rows. Hyundai statements concatenate the merchant name with a
// trailing amount in one cell and carry their installment charges in a
// marker-delimited sub-section after the overseas-usage subtotal.
package hyundaiparser

import (
	"strings"

	"moabook/cardsheet/internal/dateutils"
	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsercommon"
	"moabook/cardsheet/internal/parsererror"
)

var (
	filenameHints  = []string{"현대", "hyundai"}
	headerKeywords = []string{"이용일", "결제원금"}
)

// Section markers, whitespace-stripped: the overseas-usage subtotal opens the
// installment range, the installment subtotal closes it.
const (
	installmentStartMarker = "해외이용소계"
	installmentEndMarker   = "할부소계"
)

// Parser parses Hyundai card statements.
type Parser struct {
	log logging.Logger
}

// New creates a Hyundai statement parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{log: logger}
}

// Name returns the source tag string.
func (p *Parser) Name() string {
	return string(models.SourceHyundai)
}

// CanParse probes the filename hints first, then requires the full header
// keyword set.
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
		return models.FailedOutcome(models.SourceHyundai, string(parsererror.KindHeaderNotFound), err.Error()), err
	}

	header := grid[headerIdx]
	dateCol := parsercommon.FindColumn(header, "이용일")
	merchantCol := parsercommon.FindColumn(header, "이용가맹점")
	discountCol := parsercommon.FindColumn(header, "할인금액")
	paymentCol := parsercommon.FindColumn(header, "결제원금")

	scanner := parsercommon.NewSectionScanner(installmentStartMarker, installmentEndMarker)
	var rows []models.CanonicalRow
	var billingTotal *int64

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
			// The billed-total line is a summary row too; keep its value for
			// usage-vs-billing reconciliation before skipping it.
			if strings.Contains(label, "청구") {
				if v := parsercommon.ResolveAmount("", parsercommon.CellAt(row, paymentCol)); v > 0 {
					billingTotal = &v
				}
			}
			continue
		}

		date, ok := dateutils.Normalize(parsercommon.CellAt(row, dateCol))
		if !ok {
			if strings.TrimSpace(label) != "" {
				log.WithField(logging.FieldRow, i).Debug("Dropping row with unparseable date")
			}
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
		return models.FailedOutcome(models.SourceHyundai, string(parsererror.KindNoData), err.Error()), err
	}

	outcome := &models.ParseOutcome{
		OK:           true,
		Rows:         rows,
		SourceTag:    models.SourceHyundai,
		BillingTotal: billingTotal,
	}
	outcome.TotalAmount = outcome.SumRows()

	log.WithField(logging.FieldCount, len(rows)).Info("Parsed Hyundai card statement")
	return outcome, nil
}
