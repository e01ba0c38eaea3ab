package dataset

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/domain/types"
)

var (
	// ErrNotSpreadsheet means the given bytes could not be opened as an
	// xlsx workbook at all.
	ErrNotSpreadsheet = goerr.New("not a readable spreadsheet")

	// ErrEmptyWorkbook means the workbook opened but has no sheet to read.
	ErrEmptyWorkbook = goerr.New("workbook has no sheets")

	// ErrMissingColumns means the header row lacks one or more required
	// columns. The missing names are attached under KeyColumns.
	ErrMissingColumns = goerr.New("missing required columns")

	// ErrInvalidCell means a data cell could not be converted to the
	// type its column requires.
	ErrInvalidCell = goerr.New("invalid cell value")
)

// Error value keys
const (
	KeyColumns = "columns"
	KeyRow     = "row"
	KeyColumn  = "column"
	KeyValue   = "value"
	KeySheet   = "sheet"
)

// MissingColumns returns the column names attached to a ErrMissingColumns
// error, in the canonical required-column order. It returns nil if err is
// not a missing-columns failure.
func MissingColumns(err error) []types.Column {
	if !errors.Is(err, ErrMissingColumns) {
		return nil
	}

	var ge *goerr.Error
	if !errors.As(err, &ge) {
		return nil
	}

	cols, ok := ge.Values()[KeyColumns].([]types.Column)
	if !ok {
		return nil
	}
	return cols
}
