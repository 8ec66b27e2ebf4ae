package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
)

// Run executes the collect command.
func (c *CollectCmd) Run(deps *Dependencies, g *Globals) error {
	opts, err := g.BuildOptions()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	collector, err := newCollector(opts, g.Logger(deps.Stderr))
	if err != nil {
		return err
	}
	docs, err := collector.Collect(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	return fs.EncodeManifest(deps.Stdout, docs)
}
