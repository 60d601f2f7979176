package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/registro/pkg/adapters/fs"
	"github.com/aretw0/registro/pkg/core"
)

// Init prepares the persistence gateway for the snapshot at path.
// The path argument is adapter-specific (a file path for "fs").
func Init(ctx context.Context, path string, opts ...Option) (core.Snapshotter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initSnapshotter(ctx, path, o)
}

// New wires a Record Store to its snapshot and loads the persisted records.
//
//	store, err := platform.New(ctx, "personas.json", platform.WithLogger(logger))
func New(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	snap, err := initSnapshotter(ctx, path, o)
	if err != nil {
		return nil, err
	}
	return core.NewStore(ctx, snap, o.logger), nil
}

func initSnapshotter(ctx context.Context, path string, o *options) (core.Snapshotter, error) {
	if o.snapshotter != nil {
		return o.snapshotter, nil
	}

	switch o.adapter {
	case "fs":
		return initFS(ctx, path, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(ctx context.Context, path string, o *options) (core.Snapshotter, error) {
	if path == "" {
		path = fs.DefaultFileName
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	snap := fs.NewSnapshot(fs.Config{
		Path:         path,
		MustExist:    o.mustExist,
		Logger:       logger.With("component", "snapshot"),
		ErrorHandler: o.errorHandler,
	})
	if err := snap.Initialize(ctx); err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "snapshot ready", "path", snap.Path)
	return snap, nil
}
