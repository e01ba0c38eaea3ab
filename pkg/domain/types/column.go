package types

// Column represents a spreadsheet column name of the materiality input format
type Column string

const (
	ColumnName     Column = "Name of IRO"
	ColumnImpact   Column = "Impact"
	ColumnRisk     Column = "Risk"
	ColumnSubTopic Column = "Sub-Topic"
)

// RequiredColumns returns the columns a dataset must provide, in canonical order
func RequiredColumns() []Column {
	return []Column{
		ColumnName,
		ColumnImpact,
		ColumnRisk,
		ColumnSubTopic,
	}
}

// IsRequired checks if the column is one of the required columns
func (c Column) IsRequired() bool {
	switch c {
	case ColumnName, ColumnImpact, ColumnRisk, ColumnSubTopic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the column
func (c Column) String() string {
	return string(c)
}
