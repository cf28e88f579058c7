package parsercommon

import "strings"

// SectionState is the position of the scanner within a statement's
// installment sub-section.
type SectionState int

const (
	// ScanningNormal covers ordinary usage rows before the installment section.
	ScanningNormal SectionState = iota
	// InInstallmentSection covers rows between the two marker rows.
	InInstallmentSection
	// Done is reached at the closing marker; trailing summary rows must not be
	// scanned or double-counted.
	Done
)

// SectionScanner is the strict three-state machine that delimits the
// installment sub-section of a card statement. Rows strictly between the
// opening marker (overseas-usage subtotal) and the closing marker
// (installment subtotal) are installment rows; the marker rows themselves are
// not. When only one of the two markers is present the installment range is
// silently empty, matching the historical behavior of the source fixtures.
type SectionScanner struct {
	state       SectionState
	startMarker string
	endMarker   string
}

// NewSectionScanner creates a scanner keyed on the whitespace-stripped marker
// labels.
func NewSectionScanner(startMarker, endMarker string) *SectionScanner {
	return &SectionScanner{
		state:       ScanningNormal,
		startMarker: startMarker,
		endMarker:   endMarker,
	}
}

// Observe advances the machine with a row's label cell and reports whether
// that row was a section marker (markers are skipped by callers).
func (s *SectionScanner) Observe(label string) bool {
	clean := stripSpace(label)
	switch s.state {
	case ScanningNormal:
		if strings.Contains(clean, s.startMarker) {
			s.state = InInstallmentSection
			return true
		}
	case InInstallmentSection:
		if strings.Contains(clean, s.endMarker) {
			s.state = Done
			return true
		}
	}
	return false
}

// InInstallment reports whether subsequently observed rows fall inside the
// installment section.
func (s *SectionScanner) InInstallment() bool {
	return s.state == InInstallmentSection
}

// Finished reports whether the closing marker was seen; scanning stops here.
func (s *SectionScanner) Finished() bool {
	return s.state == Done
}

// State exposes the current machine state.
func (s *SectionScanner) State() SectionState {
	return s.state
}
