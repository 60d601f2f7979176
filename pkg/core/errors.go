package core

import (
	"errors"
	"fmt"
)

// Domain errors. Callers match them with errors.Is; the wrapped message is
// safe to show to users.
var (
	ErrValidation        = errors.New("all fields are required")
	ErrDuplicateControl  = errors.New("a record with this control already exists")
	ErrNotFound          = errors.New("record not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrWatchUnsupported  = errors.New("snapshot does not support watching")
)

// PersistenceError describes a failed snapshot read or write.
// It is reported to the observability sink and never returned by the Store.
type PersistenceError struct {
	Op   string // "load", "save", "watch"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
