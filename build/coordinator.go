package build

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/google/uuid"
)

// Coordinator serializes dev rebuilds. At most one build runs at a time;
// any number of requests made during a build collapse into exactly one
// trailing build.
type Coordinator struct {
	Builder   docindex.IndexBuilder
	Watcher   docindex.Watcher
	SourceDir string
	TargetDir string
	Logger    *slog.Logger

	mu       sync.Mutex
	building bool
	pending  bool
}

// RequestRebuild starts a build, or marks one as pending when a build is
// already running. It returns once the coordinator is idle again, or
// immediately if another caller owns the running build.
func (c *Coordinator) RequestRebuild(ctx context.Context) {
	if c.claim() {
		c.buildLoop(ctx)
	}
}

// claim takes ownership of the build loop. When a build is already running
// it records a pending request instead and returns false.
func (c *Coordinator) claim() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.building {
		c.pending = true
		return false
	}
	c.building = true
	return true
}

// buildLoop runs builds until no request is pending. The caller must own
// the loop through claim.
func (c *Coordinator) buildLoop(ctx context.Context) {
	for {
		c.rebuild(ctx)

		c.mu.Lock()
		if !c.pending {
			c.building = false
			c.mu.Unlock()
			return
		}
		c.pending = false
		c.mu.Unlock()
	}
}

// Building reports whether a build is in flight.
func (c *Coordinator) Building() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.building
}

// Run triggers an initial build and then rebuilds on every Markdown change
// under SourceDir until ctx is done.
func (c *Coordinator) Run(ctx context.Context) error {
	if c.claim() {
		go c.buildLoop(ctx)
	}

	return c.Watcher.Watch(ctx, c.SourceDir, func(event docindex.ChangeEvent) {
		if !docindex.IsSourceChange(c.SourceDir, event.Path) {
			return
		}
		c.logger().Debug("source changed", "path", event.Path, "op", event.Op.String())
		// Claim inline so a burst during a build folds into one pending request.
		if c.claim() {
			go c.buildLoop(ctx)
		}
	})
}

// rebuild runs one build. Failures are logged; the previous index stays
// in place and the next change retries.
func (c *Coordinator) rebuild(ctx context.Context) {
	// The session is shutting down.
	if ctx.Err() != nil {
		return
	}

	logger := c.logger().With("build_id", uuid.NewString(), "target", c.TargetDir)
	begin := time.Now()

	if err := c.Builder.BuildIndex(ctx, c.TargetDir); err != nil {
		logger.Error("rebuild failed",
			"duration", time.Since(begin),
			"err", err,
		)
		return
	}
	logger.Info("rebuild complete", "duration", time.Since(begin))
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
