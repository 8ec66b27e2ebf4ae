package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/build"
	"github.com/fwojciec/docindex/fsnotify"
	dihttp "github.com/fwojciec/docindex/http"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests may take after the
// session is cancelled.
const shutdownTimeout = 5 * time.Second

// Run executes the dev command. It returns when deps.Ctx is cancelled.
func (c *DevCmd) Run(deps *Dependencies, g *Globals) error {
	opts, err := g.BuildOptions()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	logger := g.Logger(deps.Stderr)

	builder, err := newIndexBuilder(opts, logger, deps.Stdout, deps.Stderr)
	if err != nil {
		return err
	}
	coord := &build.Coordinator{
		Builder:   builder,
		Watcher:   fsnotify.NewWatcher(fsnotify.WithLogger(logger)),
		SourceDir: opts.DocsDir,
		TargetDir: opts.DevIndexDir,
		Logger:    logger,
	}

	site := http.FileServer(http.Dir(opts.OutDir))
	srv := dihttp.NewServer(c.Addr, dihttp.AssetHandler(opts.MountPrefix(), opts.DevIndexDir, site))
	if err := srv.Open(); err != nil {
		return fmt.Errorf("listen on %s: %w", c.Addr, err)
	}
	logger.Info("dev server listening",
		"url", "http://"+srv.Addr()+opts.Base+"/",
		"docs", opts.DocsDir,
		"index", opts.DevIndexDir,
	)

	eg, ctx := errgroup.WithContext(deps.Ctx)
	eg.Go(func() error {
		return coord.Run(ctx)
	})
	eg.Go(func() error {
		return srv.Serve()
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
