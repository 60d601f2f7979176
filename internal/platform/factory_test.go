package platform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aretw0/registro/internal/platform"
	"github.com/aretw0/registro/pkg/core"
)

func setupStore(t *testing.T, opts ...platform.Option) (*core.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "personas.json")

	store, err := platform.New(context.TODO(), path, opts...)
	if err != nil {
		t.Fatalf("Failed to init store: %v", err)
	}
	return store, path
}

func TestNew_PersistsToFile(t *testing.T) {
	store, path := setupStore(t)
	ctx := context.TODO()

	if _, err := store.Add(ctx, "Ana", "C001", "Systems"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Snapshot was not created at %s", path)
	}

	reopened, err := platform.New(ctx, path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if p, ok := reopened.GetByControl(ctx, "C001"); !ok || p.Name != "Ana" {
		t.Errorf("Expected C001 to survive a restart, got %+v (found=%v)", p, ok)
	}
}

func TestNew_MustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "personas.json")

	if _, err := platform.New(context.TODO(), path, platform.WithMustExist(true)); err == nil {
		t.Fatal("Expected error for missing data directory")
	}
	if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
		t.Error("Data directory SHOULD NOT be created when it must exist")
	}
}

func TestNew_UnknownAdapter(t *testing.T) {
	_, err := platform.New(context.TODO(), "x.json", platform.WithAdapter("s3"))
	if err == nil {
		t.Fatal("Expected error for unknown adapter")
	}
}

type fakeSnapshot struct {
	mu    sync.Mutex
	saved []core.Person
}

func (f *fakeSnapshot) Load(context.Context) []core.Person {
	return []core.Person{{Name: "Seed", Control: "S1", Specialty: "Init"}}
}

func (f *fakeSnapshot) Save(_ context.Context, people []core.Person) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = people
}

func TestNew_WithSnapshotter(t *testing.T) {
	fake := &fakeSnapshot{}
	store, err := platform.New(context.TODO(), "ignored.json", platform.WithSnapshotter(fake))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("Expected seeded record, got %d", store.Len())
	}

	if _, err := store.Add(context.TODO(), "Ana", "C001", "Systems"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.saved) != 2 {
		t.Errorf("Expected 2 saved records, got %d", len(fake.saved))
	}
	if _, err := os.Stat("ignored.json"); !os.IsNotExist(err) {
		t.Error("Filesystem adapter SHOULD NOT be used when a snapshotter is injected")
	}
}

func TestNew_ErrorHandler(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "personas.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	var reported []error
	store, err := platform.New(context.TODO(), path, platform.WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if store.Len() != 0 {
		t.Errorf("Corrupt snapshot should load as empty, got %d records", store.Len())
	}
	if len(reported) != 1 {
		t.Fatalf("Expected one reported failure, got %d", len(reported))
	}
	var perr *core.PersistenceError
	if !errors.As(reported[0], &perr) || perr.Op != "load" {
		t.Errorf("Expected a load PersistenceError, got %v", reported[0])
	}
}

func TestInit_ReturnsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "personas.json")

	snap, err := platform.Init(context.TODO(), path)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, ok := snap.(core.Watchable); !ok {
		t.Error("Filesystem snapshot should support watching")
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("Init should create the data directory: %v", err)
	}
}
