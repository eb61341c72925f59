package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docref"
)

// Ensure LoggingLibraryResolver implements docref.LibraryResolver.
var _ docref.LibraryResolver = (*LoggingLibraryResolver)(nil)

// LoggingLibraryResolver wraps a LibraryResolver with debug logging.
type LoggingLibraryResolver struct {
	next   docref.LibraryResolver
	logger *slog.Logger
}

// NewLoggingLibraryResolver creates a new LoggingLibraryResolver.
func NewLoggingLibraryResolver(next docref.LibraryResolver, logger *slog.Logger) *LoggingLibraryResolver {
	return &LoggingLibraryResolver{next: next, logger: logger}
}

// FindLibrariesForFile delegates to the wrapped resolver and logs the lookup.
func (r *LoggingLibraryResolver) FindLibrariesForFile(ctx context.Context, file string) (libs []*docref.Library, err error) {
	defer func(begin time.Time) {
		r.logger.Info("library lookup",
			"file", file,
			"count", len(libs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FindLibrariesForFile(ctx, file)
}
