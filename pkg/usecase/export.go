package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/service/figure"
	"github.com/secmon-lab/materia/pkg/utils/logging"
)

// Export renders the materiality map as a downloadable PNG and returns
// the suggested filename with the image bytes.
//
// TODO: export always renders the default dataset, even when the user
// has an uploaded file on screen. Switch to the uploaded dataset once
// product confirms the export should match the visible chart.
func (uc *UseCases) Export(ctx context.Context, company string) (string, []byte, error) {
	fig := figure.Build(uc.defaultDataset, company)

	data, err := figure.RenderPNG(fig, figure.ExportWidth, figure.ExportHeight, figure.ExportScale)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to render export image",
			goerr.V("company", company),
		)
	}

	name := ExportFilename(company, uc.now())

	logging.From(ctx).Info("Exported materiality map",
		"dataset_id", uc.defaultDataset.ID,
		"filename", name,
		"bytes", len(data),
	)

	return name, data, nil
}

// ExportFilename derives the download filename from the company name and
// the given date: materiality_map_<slug>_<YYYYMMDD>.png, where the slug
// is the lowercased name with spaces as underscores, or "company" when
// the name is blank.
func ExportFilename(company string, now time.Time) string {
	slug := "company"
	if company != "" {
		slug = strings.ReplaceAll(strings.ToLower(company), " ", "_")
	}
	return "materiality_map_" + slug + "_" + now.Format("20060102") + ".png"
}
