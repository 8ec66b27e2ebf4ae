package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
	dislog "github.com/fwojciec/docindex/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies, g *Globals) error {
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

	if err := dislog.NewLoggingIndexBuilder(builder, logger).BuildIndex(deps.Ctx, opts.IndexDir); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	return nil
}
