package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/registro/pkg/core"
)

const debounceDelay = 50 * time.Millisecond

// Watch observes the snapshot file for edits made outside this process and
// calls onChange with the re-read records. Writes made through Save are
// recognised by checksum and ignored. A file that fails to parse is reported
// and skipped so the in-memory set stays authoritative.
func (s *Snapshot) Watch(ctx context.Context, onChange func([]core.Person)) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: atomic renames replace the file's inode.
	dir := filepath.Dir(s.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	s.setWatcherActive(true)
	deb := newDebouncer(debounceDelay)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer s.setWatcherActive(false)
		defer watcher.Close()
		defer deb.stopAndWait(5 * time.Second)
		defer s.recoverWatch(ctx)

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !s.isSnapshotEvent(event) {
					continue
				}
				s.config.Logger.DebugContext(ctx, "snapshot event", "op", event.Op.String())
				deb.trigger(func() { s.reload(ctx, onChange) })

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.report(ctx, "watch", wErr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.report(ctx, "watch", err)
	}))

	return nil
}

func (s *Snapshot) isSnapshotEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(s.Path) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}

func (s *Snapshot) reload(ctx context.Context, onChange func([]core.Person)) {
	if ctx.Err() != nil {
		return
	}

	people, changed := s.readExternal(ctx)
	if !changed {
		return
	}

	s.config.Logger.InfoContext(ctx, "snapshot changed externally", "path", s.Path, "records", len(people))
	// Outside writeMu: onChange takes the store lock, which a concurrent Save
	// already holds while it waits for writeMu.
	onChange(people)
}

// readExternal reads the file under writeMu and reports whether it holds
// content this process did not write.
func (s *Snapshot) readExternal(ctx context.Context) ([]core.Person, bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.report(ctx, "watch", err)
		}
		return nil, false
	}
	// Truncated mid-write by an external editor; the next event carries the content.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false
	}
	if s.known(data) {
		return nil, false
	}

	people, err := decode(data)
	if err != nil {
		s.report(ctx, "watch", err)
		return nil, false
	}
	s.remember(data)
	return people, true
}

func (s *Snapshot) recoverWatch(ctx context.Context) {
	recovered := recover()
	if recovered == nil {
		return
	}
	args := []any{"error", recovered}
	// Stack traces only at debug level.
	if s.config.Logger.Enabled(ctx, slog.LevelDebug) {
		args = append(args, "stack", string(debug.Stack()))
	}
	s.config.Logger.Error("watcher panic", args...)
	s.report(ctx, "watch", fmt.Errorf("watcher panic: %v", recovered))
}
