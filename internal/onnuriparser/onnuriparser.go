// Package onnuriparser parses Onnuri regional-voucher payment exports. The
// layout is flat: a metadata preamble, a two-row header, then data rows keyed
// by a sequence number, with only settled payments included.
package onnuriparser

import (
	"strings"

	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsercommon"
	"moabook/cardsheet/internal/parsererror"
)

var (
	filenameHints  = []string{"온누리", "onnuri"}
	headerKeywords = []string{"순번", "결제금액"}
)

var layout = parsercommon.VoucherLayout{
	SeqKeyword:      "순번",
	DateKeyword:     "결제일",
	MerchantKeyword: "가맹점",
	AmountKeyword:   "결제금액",
	StatusKeyword:   "상태",
	SettledSentinel: "결제완료",
}

// Parser parses Onnuri voucher exports.
type Parser struct {
	log logging.Logger
}

// New creates an Onnuri voucher parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{log: logger}
}

// Name returns the source tag string.
func (p *Parser) Name() string {
	return string(models.SourceOnnuri)
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
		return models.FailedOutcome(models.SourceOnnuri, string(parsererror.KindHeaderNotFound), err.Error()), err
	}

	rows := parsercommon.ParseVoucherRows(grid, headerIdx, layout)
	if len(rows) == 0 {
		err := &parsererror.NoDataError{FilePath: filename, Parser: p.Name()}
		return models.FailedOutcome(models.SourceOnnuri, string(parsererror.KindNoData), err.Error()), err
	}

	outcome := &models.ParseOutcome{
		OK:        true,
		Rows:      rows,
		SourceTag: models.SourceOnnuri,
	}
	outcome.TotalAmount = outcome.SumRows()

	log.WithField(logging.FieldCount, len(rows)).Info("Parsed Onnuri voucher export")
	return outcome, nil
}
