package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Store is the Record Store: the ordered, in-memory set of Person records.
// Every mutation and the snapshot write that follows it run under one lock.
type Store struct {
	mu     sync.RWMutex
	people []Person
	snap   Snapshotter
	logger *slog.Logger
}

var _ Registry = (*Store)(nil)

// NewStore creates a Store and loads the records persisted by snap.
// A nil snap keeps the records in memory only.
func NewStore(ctx context.Context, snap Snapshotter, logger *slog.Logger) *Store {
	if snap == nil {
		snap = nopSnapshot{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{snap: snap, logger: logger}
	s.people = s.sanitize(ctx, snap.Load(ctx))
	logger.DebugContext(ctx, "store loaded", "records", len(s.people))
	return s
}

// Add creates a record after trimming its fields.
func (s *Store) Add(ctx context.Context, name, control, specialty string) (Person, error) {
	p := NewPerson(name, control, specialty)
	if !p.Complete() {
		return Person{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.Control) >= 0 {
		return Person{}, fmt.Errorf("%w: %s", ErrDuplicateControl, p.Control)
	}

	s.people = append(s.people, p)
	s.persist(ctx)
	s.logger.InfoContext(ctx, "record added", "control", p.Control)
	return p, nil
}

// Remove deletes the record with the given control.
// It persists only when something was removed.
func (s *Store) Remove(ctx context.Context, control string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(control)
	if i < 0 {
		return false
	}

	s.people = append(s.people[:i:i], s.people[i+1:]...)
	s.persist(ctx)
	s.logger.InfoContext(ctx, "record removed", "control", control)
	return true
}

// Find returns, in store order, the records where the query is a
// case-insensitive substring of the name, control or specialty.
// An empty query returns every record.
func (s *Store) Find(ctx context.Context, query string) []Person {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if q == "" {
		return clone(s.people)
	}

	result := make([]Person, 0)
	for _, p := range s.people {
		if p.Matches(q) {
			result = append(result, p)
		}
	}
	return result
}

// GetByControl returns the record whose control is exactly control.
func (s *Store) GetByControl(ctx context.Context, control string) (Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(control); i >= 0 {
		return s.people[i], true
	}
	return Person{}, false
}

// Update overwrites all three fields of the record identified by
// originalControl. Renaming the control is allowed as long as no other record
// holds the new value.
func (s *Store) Update(ctx context.Context, originalControl, name, control, specialty string) (Person, error) {
	p := NewPerson(name, control, specialty)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(originalControl)
	if i < 0 {
		return Person{}, fmt.Errorf("%w: %s", ErrNotFound, originalControl)
	}
	if !p.Complete() {
		return Person{}, ErrValidation
	}
	if p.Control != originalControl {
		if j := s.indexOf(p.Control); j >= 0 && j != i {
			return Person{}, fmt.Errorf("%w: %s", ErrDuplicateControl, p.Control)
		}
	}

	s.people[i] = p
	s.persist(ctx)
	s.logger.InfoContext(ctx, "record updated", "control", originalControl, "new_control", p.Control)
	return p, nil
}

// List returns a copy of every record in insertion order.
func (s *Store) List(ctx context.Context) []Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.people)
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.people)
}

// Replace adopts a record set read from outside the process without writing
// it back. Invalid and duplicate entries are dropped.
func (s *Store) Replace(ctx context.Context, people []Person) {
	clean := s.sanitize(ctx, people)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = clean
	s.logger.InfoContext(ctx, "store reloaded", "records", len(clean))
}

// Flush writes the current record set to the snapshot.
func (s *Store) Flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist(ctx)
}

// Watch keeps the store in sync with external edits of the snapshot when the
// snapshotter supports it.
func (s *Store) Watch(ctx context.Context) error {
	w, ok := s.snap.(Watchable)
	if !ok {
		return fmt.Errorf("%w: %T", ErrWatchUnsupported, s.snap)
	}
	return w.Watch(ctx, func(people []Person) {
		s.Replace(ctx, people)
	})
}

// persist must be called with s.mu held for writing.
func (s *Store) persist(ctx context.Context) {
	s.snap.Save(ctx, clone(s.people))
}

func (s *Store) indexOf(control string) int {
	for i, p := range s.people {
		if p.Control == control {
			return i
		}
	}
	return -1
}

// sanitize trims loaded records and drops those that would break the
// uniqueness or completeness rules.
func (s *Store) sanitize(ctx context.Context, people []Person) []Person {
	seen := make(map[string]bool, len(people))
	out := make([]Person, 0, len(people))
	for _, raw := range people {
		p := NewPerson(raw.Name, raw.Control, raw.Specialty)
		if !p.Complete() {
			s.logger.WarnContext(ctx, "skipping incomplete record", "control", p.Control)
			continue
		}
		if seen[p.Control] {
			s.logger.WarnContext(ctx, "skipping duplicate control", "control", p.Control)
			continue
		}
		seen[p.Control] = true
		out = append(out, p)
	}
	return out
}

func clone(people []Person) []Person {
	out := make([]Person, len(people))
	copy(out, people)
	return out
}

type nopSnapshot struct{}

func (nopSnapshot) Load(context.Context) []Person { return nil }
func (nopSnapshot) Save(context.Context, []Person) {}
