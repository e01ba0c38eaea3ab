package usecase

import (
	"time"

	"github.com/secmon-lab/materia/pkg/domain/model"
)

// UseCases wires the dataset and figure services to the web boundary.
// The default dataset is loaded once at startup and shared read-only by
// every request.
type UseCases struct {
	defaultDataset *model.Dataset
	templatePath   string
	now            func() time.Time
}

type Option func(*UseCases)

// WithTemplatePath sets the on-disk template workbook served for
// download. When empty or unreadable, a generated copy is served
// instead.
func WithTemplatePath(path string) Option {
	return func(uc *UseCases) {
		uc.templatePath = path
	}
}

// WithNow overrides the clock used for export filenames.
func WithNow(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(defaultDataset *model.Dataset, opts ...Option) *UseCases {
	uc := &UseCases{
		defaultDataset: defaultDataset,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// DefaultDataset returns the dataset rendered when no file has been
// uploaded.
func (uc *UseCases) DefaultDataset() *model.Dataset {
	return uc.defaultDataset
}
