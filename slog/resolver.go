package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docref"
)

// Ensure LoggingURLResolver implements docref.URLResolver.
var _ docref.URLResolver = (*LoggingURLResolver)(nil)

// LoggingURLResolver wraps a URLResolver with debug logging.
type LoggingURLResolver struct {
	next   docref.URLResolver
	logger *slog.Logger
}

// NewLoggingURLResolver creates a new LoggingURLResolver.
func NewLoggingURLResolver(next docref.URLResolver, logger *slog.Logger) *LoggingURLResolver {
	return &LoggingURLResolver{next: next, logger: logger}
}

// ResolveURL delegates to the wrapped resolver and logs the outcome.
func (r *LoggingURLResolver) ResolveURL(ctx context.Context, element, original *docref.Element) (urls []string, err error) {
	defer func(begin time.Time) {
		var url string
		if len(urls) > 0 {
			url = urls[0]
		}
		r.logger.Info("resolve url",
			"element", elementName(element),
			"url", url,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveURL(ctx, element, original)
}

// QuickSignature delegates to the wrapped resolver and logs the outcome.
func (r *LoggingURLResolver) QuickSignature(ctx context.Context, element, original *docref.Element) (sig string) {
	defer func(begin time.Time) {
		r.logger.Info("quick signature",
			"element", elementName(element),
			"signature", sig,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.QuickSignature(ctx, element, original)
}

func elementName(e *docref.Element) string {
	if decl := e.NamedDeclaration(); decl != nil {
		return decl.QualifiedName()
	}
	if e != nil {
		return e.Text
	}
	return ""
}
