package platform

import (
	"log/slog"

	"github.com/aretw0/registro/pkg/core"
)

// options holds the internal configuration for a registro store.
type options struct {
	snapshotter  core.Snapshotter
	logger       *slog.Logger
	adapter      string
	mustExist    bool
	errorHandler func(error)
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
	}
}

// WithLogger sets the logger shared by the store and its snapshot.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSnapshotter allows injecting a custom persistence gateway (e.g. an
// in-memory fake). If provided, the default filesystem adapter is skipped.
func WithSnapshotter(snap core.Snapshotter) Option {
	return func(o *options) {
		o.snapshotter = snap
	}
}

// WithAdapter selects the persistence adapter by name. Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithMustExist requires the directory holding the snapshot to exist
// already instead of creating it.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithErrorHandler registers a callback for persistence failures. They are
// logged either way; the handler lets the application count or surface them.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
