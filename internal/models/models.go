// Package models provides the data structures shared by the parsing and
// classification layers.
package models

// TransactionKind distinguishes money going out from money coming in.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// CanonicalRow is the normalized transaction record shape all source parsers
// converge to. Rows are created once per parsed file and never mutated; the
// final category/date overrides happen in the record builder, which produces
// a fresh Record.
type CanonicalRow struct {
	Date          string          `json:"date" yaml:"date"` // YYYY-MM-DD
	Merchant      string          `json:"merchant" yaml:"merchant"`
	Amount        int64           `json:"amount" yaml:"amount"` // always > 0 in emitted rows
	Category      string          `json:"category" yaml:"category"`
	IsInstallment bool            `json:"is_installment" yaml:"is_installment"`
	Kind          TransactionKind `json:"kind" yaml:"kind"`
}

// ParseOutcome is the result of parsing one statement file. TotalAmount must
// equal the sum of Rows[].Amount; this is a checked invariant, not a
// convention.
type ParseOutcome struct {
	OK           bool
	Rows         []CanonicalRow
	SourceTag    SourceTag
	TotalAmount  int64
	BillingTotal *int64 // statement-level billed total, when the file reports one
	ErrorKind    string
	ErrorMessage string
}

// SumRows returns the sum of the emitted row amounts.
func (o *ParseOutcome) SumRows() int64 {
	var total int64
	for _, row := range o.Rows {
		total += row.Amount
	}
	return total
}

// FailedOutcome builds the typed failure result for a file that could not be
// ingested.
func FailedOutcome(source SourceTag, kind, message string) *ParseOutcome {
	return &ParseOutcome{
		OK:           false,
		SourceTag:    source,
		ErrorKind:    kind,
		ErrorMessage: message,
	}
}

// Provenance ties a persisted record back to the parsed row it came from, for
// audit and undo on the persistence side.
type Provenance struct {
	OriginalRow CanonicalRow `json:"original_row" yaml:"original_row"`
	RowIndex    int          `json:"row_index" yaml:"row_index"`
	FileID      string       `json:"file_id" yaml:"file_id"`
}

// Record is the final persistable transaction handed to the storage
// collaborator.
type Record struct {
	TransactionDate string          `json:"transaction_date" yaml:"transaction_date"`
	MerchantName    string          `json:"merchant_name" yaml:"merchant_name"`
	Amount          int64           `json:"amount" yaml:"amount"`
	Category        string          `json:"category" yaml:"category"`
	Kind            TransactionKind `json:"kind" yaml:"kind"`
	Source          SourceTag       `json:"source" yaml:"source"`
	Owner           string          `json:"owner" yaml:"owner"`
	Provenance      Provenance      `json:"provenance" yaml:"provenance"`
}
