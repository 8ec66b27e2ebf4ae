package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingIndexer implements docindex.Indexer.
var _ docindex.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with logging.
type LoggingIndexer struct {
	next   docindex.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next docindex.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// Index delegates to the wrapped indexer and logs its exit code.
func (i *LoggingIndexer) Index(ctx context.Context, manifestPath, targetDir string) (result *docindex.IndexResult, err error) {
	defer func(begin time.Time) {
		exitCode := -1
		if result != nil {
			exitCode = result.ExitCode
		}
		i.logger.Debug("indexer",
			"manifest", manifestPath,
			"target", targetDir,
			"exit_code", exitCode,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Index(ctx, manifestPath, targetDir)
}

// Ensure LoggingIndexBuilder implements docindex.IndexBuilder.
var _ docindex.IndexBuilder = (*LoggingIndexBuilder)(nil)

// LoggingIndexBuilder wraps an IndexBuilder with logging. Failures are
// logged at error level.
type LoggingIndexBuilder struct {
	next   docindex.IndexBuilder
	logger *slog.Logger
}

// NewLoggingIndexBuilder creates a new LoggingIndexBuilder.
func NewLoggingIndexBuilder(next docindex.IndexBuilder, logger *slog.Logger) *LoggingIndexBuilder {
	return &LoggingIndexBuilder{next: next, logger: logger}
}

// BuildIndex delegates to the wrapped builder and logs the outcome.
func (b *LoggingIndexBuilder) BuildIndex(ctx context.Context, targetDir string) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		b.logger.Log(ctx, level, "index build",
			"target", targetDir,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.BuildIndex(ctx, targetDir)
}
