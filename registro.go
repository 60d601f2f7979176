package registro

import (
	"context"
	"log/slog"

	"github.com/aretw0/registro/internal/platform"
	"github.com/aretw0/registro/pkg/core"
	"github.com/aretw0/registro/pkg/export"
)

// --- Types ---

// Person is a public alias for the domain record.
type Person = core.Person

// Store is a public alias for the Record Store.
type Store = core.Store

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithLogger sets the logger for the store and its snapshot.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSnapshotter allows injecting a custom persistence gateway.
func WithSnapshotter(snap core.Snapshotter) Option {
	return platform.WithSnapshotter(snap)
}

// WithAdapter allows specifying the persistence adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithMustExist requires the data directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithErrorHandler registers a callback for persistence failures.
func WithErrorHandler(fn func(error)) Option {
	return platform.WithErrorHandler(fn)
}

// --- Factory ---

// New opens the Record Store persisted at path.
func New(ctx context.Context, path string, opts ...Option) (*Store, error) {
	return platform.New(ctx, path, opts...)
}

// NewExporter resolves the export formats available to this process.
func NewExporter(opts ...export.Option) *export.Set {
	return export.New(opts...)
}

// --- Errors ---

var (
	ErrValidation        = core.ErrValidation
	ErrDuplicateControl  = core.ErrDuplicateControl
	ErrNotFound          = core.ErrNotFound
	ErrUnsupportedFormat = core.ErrUnsupportedFormat
	ErrWatchUnsupported  = core.ErrWatchUnsupported
)
