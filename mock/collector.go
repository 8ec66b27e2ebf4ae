package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.Collector = (*Collector)(nil)

// Collector is a mock implementation of docindex.Collector.
type Collector struct {
	CollectFn func(ctx context.Context) ([]*docindex.Document, error)
}

func (c *Collector) Collect(ctx context.Context) ([]*docindex.Document, error) {
	return c.CollectFn(ctx)
}
