// Package fs implements the Persistence Gateway on the local filesystem.
//
// The full record set lives in a single pretty-printed JSON file that is
// always rewritten as a whole through an atomic temp-file rename.
package fs

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/registro/pkg/core"
)

// DefaultFileName is the snapshot file used when no path is configured.
const DefaultFileName = "personas.json"

// Config holds the configuration for the snapshot file.
type Config struct {
	Path      string
	MustExist bool // parent directory must exist; Initialize will not create it
	Logger    *slog.Logger
	// ErrorHandler receives every *core.PersistenceError after it is logged.
	ErrorHandler func(error)
}

// Snapshot implements core.Snapshotter and core.Watchable on a JSON file.
type Snapshot struct {
	Path   string
	config Config

	// writeMu serializes file writes with the watcher's reads, so a reload
	// never sees the previous content while lastSum already names the next.
	writeMu sync.Mutex

	mu            sync.RWMutex
	lastSum       [sha256.Size]byte
	lastSave      *time.Time
	lastErr       error
	watcherActive bool
}

var (
	_ core.Snapshotter = (*Snapshot)(nil)
	_ core.Watchable   = (*Snapshot)(nil)
)

// NewSnapshot creates a filesystem-backed snapshot.
func NewSnapshot(config Config) *Snapshot {
	if config.Path == "" {
		config.Path = DefaultFileName
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Snapshot{
		Path:   config.Path,
		config: config,
	}
}

// Initialize makes sure the directory holding the snapshot exists.
func (s *Snapshot) Initialize(ctx context.Context) error {
	dir := filepath.Dir(s.Path)
	if s.config.MustExist {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("data directory does not exist: %s", dir)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Load returns the persisted records. A missing file yields an empty
// sequence; any other failure is reported and also yields an empty sequence.
func (s *Snapshot) Load(ctx context.Context) []core.Person {
	people, err := s.Read(ctx)
	if errors.Is(err, os.ErrNotExist) {
		s.config.Logger.InfoContext(ctx, "snapshot not found, starting empty", "path", s.Path)
		return []core.Person{}
	}
	if err != nil {
		s.report(ctx, "load", err)
		return []core.Person{}
	}
	s.config.Logger.InfoContext(ctx, "snapshot loaded", "path", s.Path, "records", len(people))
	return people
}

// Read parses the snapshot file and returns any failure to the caller.
func (s *Snapshot) Read(ctx context.Context) ([]core.Person, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	people, err := decode(data)
	if err != nil {
		return nil, err
	}
	s.remember(data)
	return people, nil
}

// Save overwrites the snapshot with the full record set. Failures are
// reported, never returned.
func (s *Snapshot) Save(ctx context.Context, people []core.Person) {
	if err := s.Write(ctx, people); err != nil {
		s.report(ctx, "save", err)
		return
	}
	s.config.Logger.DebugContext(ctx, "snapshot saved", "path", s.Path, "records", len(people))
}

// Write serializes and atomically replaces the snapshot file.
func (s *Snapshot) Write(ctx context.Context, people []core.Person) error {
	data, err := encode(people)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// Remember before the rename so the watcher never mistakes our own write
	// for an external edit.
	prev := s.remember(data)
	if err := WriteFileAtomic(s.Path, data, 0644); err != nil {
		s.restore(prev)
		return err
	}

	s.mu.Lock()
	now := time.Now()
	s.lastSave = &now
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

func (s *Snapshot) report(ctx context.Context, op string, err error) {
	perr := &core.PersistenceError{Op: op, Path: s.Path, Err: err}

	s.mu.Lock()
	s.lastErr = perr
	s.mu.Unlock()

	s.config.Logger.ErrorContext(ctx, "snapshot failure", "op", op, "path", s.Path, "error", err)
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(perr)
	}
}

// remember records the checksum of data as the last known content and
// returns the previous one.
func (s *Snapshot) remember(data []byte) [sha256.Size]byte {
	sum := sha256.Sum256(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.lastSum
	s.lastSum = sum
	return prev
}

func (s *Snapshot) restore(sum [sha256.Size]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSum = sum
}

func (s *Snapshot) known(data []byte) bool {
	sum := sha256.Sum256(data)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sum == s.lastSum
}

// --- Serialization Helpers (Private) ---

func encode(people []core.Person) ([]byte, error) {
	if people == nil {
		people = []core.Person{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(people); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) ([]core.Person, error) {
	var people []core.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if people == nil {
		people = []core.Person{}
	}
	return people, nil
}
