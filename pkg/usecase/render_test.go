package usecase_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/secmon-lab/materia/pkg/usecase"
	"github.com/xuri/excelize/v2"
)

func dataURI(t *testing.T, raw []byte) string {
	t.Helper()
	return "data:application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;base64," +
		base64.StdEncoding.EncodeToString(raw)
}

func workbookBytes(t *testing.T, header []any, rows [][]any) []byte {
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
	return buf.Bytes()
}

func TestRenderDefault(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(dataset.Fallback())

	t.Run("with company name", func(t *testing.T) {
		fig := uc.Render(ctx, usecase.RenderInput{Company: "Acme"})
		gt.Value(t, fig.Layout.Title.Text).Equal("<b>Acme : Double Materiality Map</b>")
		gt.Number(t, fig.TraceCount()).Equal(3)
		gt.Number(t, fig.PointCount()).Equal(10)
	})

	t.Run("without company name", func(t *testing.T) {
		fig := uc.Render(ctx, usecase.RenderInput{})
		gt.Value(t, fig.Layout.Title.Text).Equal("<b>Double Materiality Map</b>")
	})
}

func TestRenderUpload(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(dataset.Fallback())

	raw := workbookBytes(t,
		[]any{"Name of IRO", "Impact", "Risk", "Sub-Topic"},
		[][]any{
			{"Grid Resilience", 4, 5, "Environmental"},
			{"Data Residency", 3, 4, "Governance"},
		},
	)

	fig := uc.Render(ctx, usecase.RenderInput{
		Company: "Acme",
		Upload:  &usecase.Upload{Filename: "items.xlsx", Content: dataURI(t, raw)},
	})

	gt.Value(t, fig.Layout.Title.Text).Equal("<b>Acme : Double Materiality Map</b>")
	gt.Number(t, fig.TraceCount()).Equal(2)
	gt.Number(t, fig.PointCount()).Equal(2)
	gt.Value(t, fig.Data[0].Text).Equal([]string{"Grid Resilience"})
}

func TestRenderMissingColumns(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(dataset.Fallback())

	t.Run("one missing column is named", func(t *testing.T) {
		raw := workbookBytes(t,
			[]any{"Name of IRO", "Impact", "Sub-Topic"},
			[][]any{{"GHG Emissions", 5, "Environmental"}},
		)

		fig := uc.Render(ctx, usecase.RenderInput{
			Upload: &usecase.Upload{Filename: "bad.xlsx", Content: dataURI(t, raw)},
		})

		gt.Value(t, fig.Layout.Title.Text).Equal("Missing required columns: Risk")
		gt.Number(t, fig.TraceCount()).Equal(0)
	})

	t.Run("all missing columns are listed", func(t *testing.T) {
		raw := workbookBytes(t,
			[]any{"Item", "Score"},
			[][]any{{"GHG Emissions", 5}},
		)

		fig := uc.Render(ctx, usecase.RenderInput{
			Upload: &usecase.Upload{Filename: "bad.xlsx", Content: dataURI(t, raw)},
		})

		gt.Value(t, fig.Layout.Title.Text).
			Equal("Missing required columns: Name of IRO, Impact, Risk, Sub-Topic")
	})
}

func TestRenderUnreadableUpload(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(dataset.Fallback())

	t.Run("plain text masquerading as xlsx", func(t *testing.T) {
		fig := uc.Render(ctx, usecase.RenderInput{
			Upload: &usecase.Upload{
				Filename: "notes.xlsx",
				Content:  dataURI(t, []byte("just some text")),
			},
		})

		gt.B(t, strings.HasPrefix(fig.Layout.Title.Text, "Error reading file:")).True()
		gt.Number(t, fig.TraceCount()).Equal(0)
	})

	t.Run("data URI without payload", func(t *testing.T) {
		fig := uc.Render(ctx, usecase.RenderInput{
			Upload: &usecase.Upload{Filename: "odd.xlsx", Content: "no-comma-here"},
		})

		gt.B(t, strings.HasPrefix(fig.Layout.Title.Text, "Error reading file:")).True()
	})

	t.Run("broken base64 payload", func(t *testing.T) {
		fig := uc.Render(ctx, usecase.RenderInput{
			Upload: &usecase.Upload{Filename: "odd.xlsx", Content: "data:foo;base64,%%%%"},
		})

		gt.B(t, strings.HasPrefix(fig.Layout.Title.Text, "Error reading file:")).True()
	})
}
