package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// SnapshotState exposes internal state for observability.
type SnapshotState struct {
	Path          string     `json:"path"`
	MustExist     bool       `json:"must_exist"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Snapshot) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := SnapshotState{
		Path:          s.Path,
		MustExist:     s.config.MustExist,
		WatcherActive: s.watcherActive,
		LastSave:      s.lastSave,
	}
	if s.lastErr != nil {
		state.LastError = s.lastErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Snapshot) ComponentType() string {
	return "json-snapshot"
}

var _ introspection.Introspectable = (*Snapshot)(nil)
var _ introspection.Component = (*Snapshot)(nil)

func (s *Snapshot) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
