// Package parser defines the capability-probe contract every source parser
// implements, and the priority-ordered registry that selects one parser per
// file.
package parser

import (
	"moabook/cardsheet/internal/models"
)

// Parser is the two-operation capability every statement source implements.
// CanParse must be cheap: it sees only the filename and the candidate header
// rows, never the full grid.
type Parser interface {
	// Name returns the source tag string used in logs and outcomes.
	Name() string

	// CanParse reports whether this parser recognizes the file, probing
	// filename substring hints first and falling back to its required
	// header-keyword set.
	CanParse(filename string, headerRows [][]string) bool

	// Parse turns the raw cell grid into an ordered sequence of canonical
	// rows. File-level failures come back as typed errors alongside a failed
	// outcome; they are never panicked across this boundary.
	Parse(grid [][]string, filename string) (*models.ParseOutcome, error)
}
