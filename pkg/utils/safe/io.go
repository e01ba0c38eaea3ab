package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/materia/pkg/utils/logging"
)

// Close closes the closer and logs a failure instead of returning it.
// Meant for deferred cleanup of workbooks and response bodies where the
// caller has no error path left. Nil closers are ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Write writes data to w and logs a failure instead of returning it.
// Used for response bodies after the status line is already out, where
// an error can only be recorded. Nil writers are ignored.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Error("Failed to write", slog.Any("error", err))
	}
}

// Copy streams src into dst and logs a failure instead of returning it.
// Nil endpoints are ignored.
func Copy(ctx context.Context, dst io.Writer, src io.Reader) {
	if dst == nil || src == nil {
		return
	}
	if _, err := io.Copy(dst, src); err != nil {
		logging.From(ctx).Error("Failed to copy", slog.Any("error", err))
	}
}
