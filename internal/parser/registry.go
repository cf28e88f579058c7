package parser

import (
	"moabook/cardsheet/internal/hyundaiparser"
	"moabook/cardsheet/internal/kbparser"
	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/lotteparser"
	"moabook/cardsheet/internal/onnuriparser"
	"moabook/cardsheet/internal/parsercommon"
	"moabook/cardsheet/internal/parsererror"
	"moabook/cardsheet/internal/samsungparser"
	"moabook/cardsheet/internal/seongnamparser"
)

// Registry probes its parsers in a fixed order and hands a file to the first
// one that accepts it.
type Registry struct {
	parsers []Parser
	log     logging.Logger
}

// NewRegistry creates a registry over an explicit parser list. Registration
// order is the priority order: when more than one parser would accept a file,
// the first registered match wins.
func NewRegistry(logger logging.Logger, parsers ...Parser) *Registry {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Registry{parsers: parsers, log: logger}
}

// DefaultRegistry registers all known sources. The voucher sources come
// first: their flat layouts carry generic column words that a looser card
// probe could otherwise shadow. Card issuers follow, then the bank export.
func DefaultRegistry(logger logging.Logger) *Registry {
	return NewRegistry(logger,
		onnuriparser.New(logger),
		seongnamparser.New(logger),
		hyundaiparser.New(logger),
		samsungparser.New(logger),
		lotteparser.New(logger),
		kbparser.New(logger),
	)
}

// Detect selects exactly one parser for the file. The candidate header rows
// handed to CanParse are the grid's leading scan window. Zero acceptors is a
// typed UNRECOGNIZED_FORMAT failure.
func (r *Registry) Detect(filename string, grid [][]string) (Parser, error) {
	window := parsercommon.HeaderScanWindow
	if window > len(grid) {
		window = len(grid)
	}
	headerRows := grid[:window]

	for _, p := range r.parsers {
		if p.CanParse(filename, headerRows) {
			r.log.WithFields(
				logging.Field{Key: logging.FieldFile, Value: filename},
				logging.Field{Key: logging.FieldParser, Value: p.Name()},
			).Debug("Parser accepted file")
			return p, nil
		}
	}

	r.log.WithField(logging.FieldFile, filename).Warn("No registered parser accepts file")
	return nil, &parsererror.UnrecognizedFormatError{FilePath: filename}
}

// Parsers exposes the registered parsers in priority order.
func (r *Registry) Parsers() []Parser {
	return r.parsers
}
