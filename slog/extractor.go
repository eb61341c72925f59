package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docref"
)

// Ensure LoggingSectionExtractor implements docref.SectionExtractor.
var _ docref.SectionExtractor = (*LoggingSectionExtractor)(nil)

// LoggingSectionExtractor wraps a SectionExtractor with debug logging.
type LoggingSectionExtractor struct {
	next   docref.SectionExtractor
	logger *slog.Logger
}

// NewLoggingSectionExtractor creates a new LoggingSectionExtractor.
func NewLoggingSectionExtractor(next docref.SectionExtractor, logger *slog.Logger) *LoggingSectionExtractor {
	return &LoggingSectionExtractor{next: next, logger: logger}
}

// Anchors delegates to the wrapped extractor and logs the anchor count.
func (e *LoggingSectionExtractor) Anchors(html string) (anchors []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("anchor discovery",
			"count", len(anchors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Anchors(html)
}

// Section delegates to the wrapped extractor and logs the section size.
func (e *LoggingSectionExtractor) Section(html string, anchor string) (section string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("section extraction",
			"anchor", anchor,
			"bytes", len(section),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Section(html, anchor)
}
