package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.Watcher = (*Watcher)(nil)

// Watcher is a mock implementation of docindex.Watcher.
type Watcher struct {
	WatchFn func(ctx context.Context, dir string, fn func(docindex.ChangeEvent)) error
}

func (w *Watcher) Watch(ctx context.Context, dir string, fn func(docindex.ChangeEvent)) error {
	return w.WatchFn(ctx, dir, fn)
}
