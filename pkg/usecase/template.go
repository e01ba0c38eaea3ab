package usecase

import (
	"context"
	"io"
	"os"

	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/secmon-lab/materia/pkg/utils/safe"
)

// WriteTemplate streams the upload template workbook to w. The on-disk
// copy is preferred so users download exactly what the server loaded at
// startup; when it is absent a generated copy is served.
func (uc *UseCases) WriteTemplate(ctx context.Context, w io.Writer) error {
	if uc.templatePath != "" {
		f, err := os.Open(uc.templatePath)
		if err == nil {
			defer safe.Close(ctx, f)
			safe.Copy(ctx, w, f)
			return nil
		}
		logging.From(ctx).Warn("Template workbook not readable, serving generated copy",
			"path", uc.templatePath,
			"error", err,
		)
	}

	return dataset.WriteTemplate(ctx, w)
}
