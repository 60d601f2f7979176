package core

import "context"

// Registry is the capability both front ends depend on.
// Adhering to it keeps the HTTP handlers and the CLI independent of the
// container behind the store.
type Registry interface {
	// Add creates a record. It fails with ErrValidation or ErrDuplicateControl.
	Add(ctx context.Context, name, control, specialty string) (Person, error)

	// Remove deletes the record with the given control and reports whether it existed.
	Remove(ctx context.Context, control string) bool

	// Find returns the records matching query, or all records when query is empty.
	Find(ctx context.Context, query string) []Person

	// GetByControl performs an exact, case-sensitive lookup.
	GetByControl(ctx context.Context, control string) (Person, bool)

	// Update replaces all three fields of the record identified by originalControl.
	Update(ctx context.Context, originalControl, name, control, specialty string) (Person, error)
}

// Snapshotter defines the contract of the Persistence Gateway.
// Implementations report their own failures; they never return them.
type Snapshotter interface {
	// Load returns the persisted records, or an empty sequence when there is
	// nothing readable.
	Load(ctx context.Context) []Person

	// Save overwrites the persisted copy with the full sequence.
	Save(ctx context.Context, people []Person)
}

// Watchable defines a Snapshotter that can notify about external edits.
type Watchable interface {
	// Watch calls onChange with the freshly read records each time the
	// persisted copy changes outside this process. It returns once watching
	// has started and stops when ctx is done.
	Watch(ctx context.Context, onChange func([]Person)) error
}
