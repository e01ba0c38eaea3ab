package dataset

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/domain/types"
	"github.com/secmon-lab/materia/pkg/utils/safe"
	"github.com/xuri/excelize/v2"
)

const templateSheet = "Sheet1"

// BuildTemplate assembles the upload template workbook: a header row of
// the required columns followed by the built-in sample items, ready for
// a user to overwrite with their own rows.
func BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	for i, col := range types.RequiredColumns() {
		axis, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build header cell name")
		}
		if err := f.SetCellValue(templateSheet, axis, col.String()); err != nil {
			return nil, goerr.Wrap(err, "failed to write header cell",
				goerr.V(KeyColumn, col),
			)
		}
	}

	for r, item := range Fallback().Items {
		cells := []any{item.Name, item.Impact, item.Risk, item.SubTopic}
		for c, v := range cells {
			axis, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to build data cell name")
			}
			if err := f.SetCellValue(templateSheet, axis, v); err != nil {
				return nil, goerr.Wrap(err, "failed to write data cell",
					goerr.V(KeyRow, r+2),
				)
			}
		}
	}

	if err := f.SetColWidth(templateSheet, "A", "A", 28); err != nil {
		return nil, goerr.Wrap(err, "failed to set column width")
	}
	if err := f.SetColWidth(templateSheet, "B", "C", 10); err != nil {
		return nil, goerr.Wrap(err, "failed to set column width")
	}
	if err := f.SetColWidth(templateSheet, "D", "D", 18); err != nil {
		return nil, goerr.Wrap(err, "failed to set column width")
	}

	return f, nil
}

// WriteTemplate streams the template workbook to w.
func WriteTemplate(ctx context.Context, w io.Writer) error {
	f, err := BuildTemplate()
	if err != nil {
		return err
	}
	defer safe.Close(ctx, f)

	if err := f.Write(w); err != nil {
		return goerr.Wrap(err, "failed to write template workbook")
	}
	return nil
}

// SaveTemplate writes the template workbook to path.
func SaveTemplate(ctx context.Context, path string) error {
	f, err := BuildTemplate()
	if err != nil {
		return err
	}
	defer safe.Close(ctx, f)

	if err := f.SaveAs(path); err != nil {
		return goerr.Wrap(err, "failed to save template workbook",
			goerr.V("path", path),
		)
	}
	return nil
}
