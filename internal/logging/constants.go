package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter and aggregate.
const (
	FieldFile     = "file"
	FieldParser   = "parser"
	FieldRow      = "row"
	FieldCount    = "count"
	FieldSource   = "source"
	FieldCategory = "category"
	FieldReason   = "reason"
	FieldMonth    = "billing_month"
	FieldKind     = "kind"
)
