// Package slog decorates docindex services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingCollector implements docindex.Collector.
var _ docindex.Collector = (*LoggingCollector)(nil)

// LoggingCollector wraps a Collector with logging.
type LoggingCollector struct {
	next   docindex.Collector
	logger *slog.Logger
}

// NewLoggingCollector creates a new LoggingCollector.
func NewLoggingCollector(next docindex.Collector, logger *slog.Logger) *LoggingCollector {
	return &LoggingCollector{next: next, logger: logger}
}

// Collect delegates to the wrapped collector and logs the corpus size.
func (c *LoggingCollector) Collect(ctx context.Context) (docs []*docindex.Document, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("collect",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Collect(ctx)
}
