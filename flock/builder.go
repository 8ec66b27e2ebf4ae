// Package flock serializes index builds across processes with advisory file
// locks.
package flock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
	"github.com/gofrs/flock"
)

// DefaultRetryDelay is how often a waiting build polls for the lock.
const DefaultRetryDelay = 100 * time.Millisecond

// LockDirName is the directory under os.TempDir that holds build locks.
// Locks stay out of the target tree so they are never published with the
// site.
const LockDirName = "docindex"

var _ docindex.IndexBuilder = (*LockingIndexBuilder)(nil)

// LockingIndexBuilder holds an exclusive per-target lock while the wrapped
// builder runs.
type LockingIndexBuilder struct {
	next       docindex.IndexBuilder
	retryDelay time.Duration
}

// Option configures a LockingIndexBuilder.
type Option func(*LockingIndexBuilder)

// WithRetryDelay sets the polling interval used while waiting for the lock.
func WithRetryDelay(d time.Duration) Option {
	return func(b *LockingIndexBuilder) {
		b.retryDelay = d
	}
}

// NewLockingIndexBuilder wraps next with a cross-process build lock.
func NewLockingIndexBuilder(next docindex.IndexBuilder, opts ...Option) *LockingIndexBuilder {
	b := &LockingIndexBuilder{
		next:       next,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LockPath returns the lock file used for targetDir. Every process that
// resolves targetDir to the same absolute path shares the lock.
func LockPath(targetDir string) string {
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		abs = filepath.Clean(targetDir)
	}
	return filepath.Join(os.TempDir(), LockDirName, fmt.Sprintf("%016x.lock", xxhash.Sum64String(abs)))
}

// BuildIndex waits for the lock, runs the wrapped builder, then releases the
// lock. Returns ECONFLICT if ctx ends before the lock is acquired.
func (b *LockingIndexBuilder) BuildIndex(ctx context.Context, targetDir string) (err error) {
	path := LockPath(targetDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(path)
	locked, err := lock.TryLockContext(ctx, b.retryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return docindex.Errorf(docindex.ECONFLICT, "index build for %s still locked: %v", targetDir, ctx.Err())
		}
		return fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return docindex.Errorf(docindex.ECONFLICT, "index build for %s is locked by another process", targetDir)
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil && err == nil {
			err = fmt.Errorf("release build lock: %w", uerr)
		}
	}()

	return b.next.BuildIndex(ctx, targetDir)
}
