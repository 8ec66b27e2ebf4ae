// Package fsnotify reports changes under a directory tree using OS file
// system notifications.
package fsnotify

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/docindex"
)

var _ docindex.Watcher = (*Watcher)(nil)

// Watcher is a recursive docindex.Watcher. Hidden directories and
// node_modules below the root are not watched.
type Watcher struct {
	logger *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger used for watcher errors.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher creates a Watcher.
func NewWatcher(opts ...Option) *Watcher {
	w := &Watcher{logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch calls fn for every change under dir until ctx is done. Event paths
// are absolute. Returns nil on cancellation.
func (w *Watcher) Watch(ctx context.Context, dir string, fn func(docindex.ChangeEvent)) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return docindex.Errorf(docindex.EINVALID, "resolve watch directory %q: %v", dir, err)
	}

	if info, err := os.Stat(root); err != nil {
		return docindex.Errorf(docindex.ENOTFOUND, "watch directory %s: %v", root, err)
	} else if !info.IsDir() {
		return docindex.Errorf(docindex.EINVALID, "watch directory %s is not a directory", root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := addRecursive(fsw, root, root, nil); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(fsw, root, event, fn)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "dir", root, "err", err)
		}
	}
}

func (w *Watcher) handle(fsw *fsnotify.Watcher, root string, event fsnotify.Event, fn func(docindex.ChangeEvent)) {
	var op docindex.ChangeOp
	switch {
	case event.Has(fsnotify.Create):
		op = docindex.ChangeAdd
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// Files may land in a new directory before it is watched, so
			// report whatever is already there.
			err := addRecursive(fsw, root, event.Name, func(path string) {
				fn(docindex.ChangeEvent{Path: path, Op: docindex.ChangeAdd})
			})
			if err != nil {
				w.logger.Warn("watch new directory", "dir", event.Name, "err", err)
			}
			return
		}
	case event.Has(fsnotify.Write):
		op = docindex.ChangeModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		op = docindex.ChangeRemove
	default:
		return
	}
	fn(docindex.ChangeEvent{Path: event.Name, Op: op})
}

// addRecursive watches start and every directory below it. When onFile is
// set it is called for each regular file found along the way.
func addRecursive(fsw *fsnotify.Watcher, root, start string, onFile func(string)) error {
	return filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			if onFile != nil {
				onFile(path)
			}
			return nil
		}
		if path != root && ignoreDir(d.Name()) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}

func ignoreDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}
