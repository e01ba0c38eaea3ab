package usecase_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/secmon-lab/materia/pkg/service/figure"
	"github.com/secmon-lab/materia/pkg/usecase"
)

func TestExport(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	uc := usecase.New(dataset.Fallback(), usecase.WithNow(func() time.Time { return fixed }))

	name, data, err := uc.Export(ctx, "Acme Corp")
	gt.NoError(t, err).Required()

	gt.Value(t, name).Equal("materiality_map_acme_corp_20240315.png")

	img, err := png.DecodeConfig(bytes.NewReader(data))
	gt.NoError(t, err).Required()
	gt.Number(t, img.Width).Equal(1800)
	gt.Number(t, img.Height).Equal(1200)
}

func TestExportUsesDefaultDataset(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(dataset.Fallback())

	// The export intentionally renders the default dataset, so its bytes
	// must match a direct render of that dataset.
	_, got, err := uc.Export(ctx, "Acme")
	gt.NoError(t, err).Required()

	want, err := figure.RenderPNG(
		figure.Build(uc.DefaultDataset(), "Acme"),
		figure.ExportWidth, figure.ExportHeight, figure.ExportScale,
	)
	gt.NoError(t, err).Required()
	gt.B(t, bytes.Equal(got, want)).True()
}

func TestExportFilename(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		company string
		want    string
	}{
		{
			name:    "spaces become underscores",
			company: "Acme Corp",
			want:    "materiality_map_acme_corp_20240315.png",
		},
		{
			name:    "mixed case is lowered",
			company: "BeMaRi",
			want:    "materiality_map_bemari_20240315.png",
		},
		{
			name:    "blank name falls back",
			company: "",
			want:    "materiality_map_company_20240315.png",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, usecase.ExportFilename(tc.company, date)).Equal(tc.want)
		})
	}
}
