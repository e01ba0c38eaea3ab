package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/materia/pkg/cli"
	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, header []any, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	gt.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		gt.NoError(t, err)
		gt.NoError(t, f.SetSheetRow("Sheet1", axis, &row))
	}

	var buf bytes.Buffer
	gt.NoError(t, f.Write(&buf))
	gt.NoError(t, f.Close())
	gt.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

func TestRun_ValidateCommand_ValidWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.xlsx")
	writeWorkbook(t, path,
		[]any{"Name of IRO", "Impact", "Risk", "Sub-Topic"},
		[][]any{
			{"Energy Efficiency", 4, 5, "Environmental"},
			{"Customer Privacy", 2, 4, "Governance"},
		},
	)

	err := cli.Run(context.Background(), []string{"materia", "validate", "--file", path}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	writeWorkbook(t, path,
		[]any{"Name of IRO", "Impact", "Sub-Topic"},
		[][]any{{"GHG Emissions", 5, "Environmental"}},
	)

	err := cli.Run(context.Background(), []string{"materia", "validate", "--file", path}, "test")
	gt.Value(t, err).NotNil()
	gt.B(t, errors.Is(err, dataset.ErrMissingColumns)).True()
}

func TestRun_ValidateCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.xlsx")

	err := cli.Run(context.Background(), []string{"materia", "validate", "--file", path}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_TemplateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")

	err := cli.Run(context.Background(), []string{"materia", "template", "--output", path}, "test")
	gt.NoError(t, err).Required()

	ds, err := dataset.Load(context.Background(), path)
	gt.NoError(t, err).Required()
	gt.Array(t, ds.Items).Length(10)
}
