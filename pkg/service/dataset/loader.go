package dataset

import (
	"bytes"
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/domain/model"
	"github.com/secmon-lab/materia/pkg/domain/types"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/secmon-lab/materia/pkg/utils/safe"
	"github.com/xuri/excelize/v2"
)

// Parse reads xlsx bytes into a dataset. The first sheet is read, the
// first row is the header, and extra columns are ignored. A dataset is
// rejected wholesale when any required column is absent; no repair is
// attempted.
func Parse(ctx context.Context, data []byte) (*model.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(ErrNotSpreadsheet, "failed to open workbook",
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(ctx, f)

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, goerr.Wrap(ErrEmptyWorkbook, "failed to find a sheet")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rows",
			goerr.V(KeySheet, sheet),
		)
	}

	index, err := mapColumns(rows)
	if err != nil {
		return nil, err
	}

	items := make([]model.MaterialityItem, 0, max(len(rows)-1, 0))
	for i, row := range rows[1:] {
		if blankRow(row, index) {
			continue
		}

		// 1-based spreadsheet row, counting the header
		rowNum := i + 2

		impact, err := parseNumber(cell(row, index[types.ColumnImpact]))
		if err != nil {
			return nil, invalidCell(rowNum, types.ColumnImpact, cell(row, index[types.ColumnImpact]))
		}
		risk, err := parseNumber(cell(row, index[types.ColumnRisk]))
		if err != nil {
			return nil, invalidCell(rowNum, types.ColumnRisk, cell(row, index[types.ColumnRisk]))
		}

		items = append(items, model.MaterialityItem{
			Name:     cell(row, index[types.ColumnName]),
			Impact:   impact,
			Risk:     risk,
			SubTopic: cell(row, index[types.ColumnSubTopic]),
		})
	}

	return model.NewDataset(items), nil
}

// Load reads the workbook at path into a dataset.
func Load(ctx context.Context, path string) (*model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read workbook file",
			goerr.V("path", path),
		)
	}

	return Parse(ctx, data)
}

// Default loads the bundled template workbook at path. When the file is
// missing, unreadable, empty or schema-invalid the failure is logged and
// the built-in sample dataset is returned instead, so the map never
// starts blank. This is the only place a load failure is swallowed.
func Default(ctx context.Context, path string) *model.Dataset {
	logger := logging.From(ctx)

	ds, err := Load(ctx, path)
	if err != nil {
		logger.Warn("Failed to load template workbook, using built-in sample data",
			"path", path,
			"error", err,
		)
		return Fallback()
	}
	if ds.Len() == 0 {
		logger.Warn("Template workbook has no rows, using built-in sample data",
			"path", path,
		)
		return Fallback()
	}

	return ds
}

// mapColumns resolves required column names to their positions in the
// header row. The first occurrence wins when a name repeats. All missing
// names are reported at once, in canonical column order.
func mapColumns(rows [][]string) (map[types.Column]int, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	index := make(map[types.Column]int, len(types.RequiredColumns()))
	for i, name := range header {
		col := types.Column(name)
		if !col.IsRequired() {
			continue
		}
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}

	var missing []types.Column
	for _, col := range types.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, goerr.Wrap(ErrMissingColumns, "failed to validate header",
			goerr.V(KeyColumns, missing),
		)
	}

	return index, nil
}

// cell returns the value at pos, tolerating rows that excelize trimmed
// short of the header width.
func cell(row []string, pos int) string {
	if pos >= len(row) {
		return ""
	}
	return row[pos]
}

// blankRow reports whether every required cell of the row is empty.
// Spreadsheets routinely carry such rows below the data; they are
// skipped rather than rejected.
func blankRow(row []string, index map[types.Column]int) bool {
	for _, pos := range index {
		if strings.TrimSpace(cell(row, pos)) != "" {
			return false
		}
	}
	return true
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func invalidCell(row int, col types.Column, value string) error {
	return goerr.Wrap(ErrInvalidCell, "failed to parse numeric cell",
		goerr.V(KeyRow, row),
		goerr.V(KeyColumn, col),
		goerr.V(KeyValue, value),
	)
}
