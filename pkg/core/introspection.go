package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Records      int    `json:"records"`
	SnapshotType string `json:"snapshot_type"`
	Watchable    bool   `json:"watchable"`
	Snapshot     any    `json:"snapshot,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapType := "memory"
	if _, ok := s.snap.(nopSnapshot); !ok {
		snapType = "snapshot"
		if comp, ok := s.snap.(introspection.Component); ok {
			snapType = comp.ComponentType()
		}
	}
	_, watchable := s.snap.(Watchable)

	state := StoreState{
		Records:      len(s.people),
		SnapshotType: snapType,
		Watchable:    watchable,
	}
	if intro, ok := s.snap.(introspection.Introspectable); ok {
		state.Snapshot = intro.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
