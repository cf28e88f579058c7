// Package seongnamparser parses Seongnam regional-voucher payment exports.
// Same flat two-tier layout as the Onnuri export, with its own column labels
// and settled-status sentinel.
package seongnamparser

import (
	"strings"

	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsercommon"
	"moabook/cardsheet/internal/parsererror"
)

var (
	filenameHints  = []string{"성남", "seongnam"}
	headerKeywords = []string{"순번", "거래금액"}
)

var layout = parsercommon.VoucherLayout{
	SeqKeyword:      "순번",
	DateKeyword:     "거래일자",
	MerchantKeyword: "가맹점",
	AmountKeyword:   "거래금액",
	StatusKeyword:   "처리상태",
	SettledSentinel: "정산완료",
}

// Parser parses Seongnam voucher exports.
type Parser struct {
	log logging.Logger
}

// New creates a Seongnam voucher parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{log: logger}
}

// Name returns the source tag string.
func (p *Parser) Name() string {
	return string(models.SourceSeongnam)
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
		return models.FailedOutcome(models.SourceSeongnam, string(parsererror.KindHeaderNotFound), err.Error()), err
	}

	rows := parsercommon.ParseVoucherRows(grid, headerIdx, layout)
	if len(rows) == 0 {
		err := &parsererror.NoDataError{FilePath: filename, Parser: p.Name()}
		return models.FailedOutcome(models.SourceSeongnam, string(parsererror.KindNoData), err.Error()), err
	}

	outcome := &models.ParseOutcome{
		OK:        true,
		Rows:      rows,
		SourceTag: models.SourceSeongnam,
	}
	outcome.TotalAmount = outcome.SumRows()

	log.WithField(logging.FieldCount, len(rows)).Info("Parsed Seongnam voucher export")
	return outcome, nil
}
