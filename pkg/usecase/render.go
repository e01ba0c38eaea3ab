package usecase

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/domain/model"
	"github.com/secmon-lab/materia/pkg/domain/types"
	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/secmon-lab/materia/pkg/service/figure"
	"github.com/secmon-lab/materia/pkg/utils/logging"
)

// Upload is a browser file upload: the content arrives as a data URI
// (`<mime-type>;base64,<payload>`).
type Upload struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// RenderInput is one render interaction. Upload is nil when the user has
// not provided a file; the trigger records which control fired the
// request and only matters for the access log.
type RenderInput struct {
	Company string        `json:"company"`
	Upload  *Upload       `json:"upload,omitempty"`
	Trigger types.Trigger `json:"trigger,omitempty"`
}

// Render builds the figure for one interaction. Failures to read an
// uploaded workbook never escape as errors: they come back as a figure
// whose title carries the diagnostic, so the user always sees a chart.
func (uc *UseCases) Render(ctx context.Context, input RenderInput) *model.Figure {
	logger := logging.From(ctx)

	if input.Upload == nil {
		logger.Debug("Rendering default dataset",
			"dataset_id", uc.defaultDataset.ID,
			"company", input.Company,
			"trigger", input.Trigger,
		)
		return figure.Build(uc.defaultDataset, input.Company)
	}

	raw, err := decodeUpload(input.Upload.Content)
	if err != nil {
		return uc.errorFigure(ctx, err)
	}

	ds, err := dataset.Parse(ctx, raw)
	if err != nil {
		return uc.errorFigure(ctx, err)
	}

	logger.Info("Parsed uploaded workbook",
		"dataset_id", ds.ID,
		"filename", input.Upload.Filename,
		"rows", ds.Len(),
		"company", input.Company,
	)

	return figure.Build(ds, input.Company)
}

// errorFigure converts a read failure into the user-visible error chart.
// Missing columns are named exactly; anything else keeps the raw reason
// behind the "Error reading file:" prefix.
func (uc *UseCases) errorFigure(ctx context.Context, err error) *model.Figure {
	logger := logging.From(ctx)

	if cols := dataset.MissingColumns(err); cols != nil {
		names := make([]string, len(cols))
		for i, col := range cols {
			names[i] = col.String()
		}
		logger.Warn("Uploaded workbook rejected", "missing_columns", names)
		return figure.ErrorFigure("Missing required columns: " + strings.Join(names, ", "))
	}

	logger.Warn("Failed to read uploaded workbook", "error", err)
	return figure.ErrorFigure("Error reading file: " + err.Error())
}

// decodeUpload unpacks a data URI: everything before the first comma is
// transport metadata, the rest is the base64 payload.
func decodeUpload(content string) ([]byte, error) {
	_, payload, found := strings.Cut(content, ",")
	if !found {
		return nil, goerr.Wrap(ErrInvalidUpload, "no payload in data URI")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidUpload, "failed to decode base64 payload",
			goerr.V("cause", err.Error()),
		)
	}
	return raw, nil
}
