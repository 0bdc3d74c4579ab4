// Package slog provides logging decorators for sitemd services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitemd"
)

var _ sitemd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   sitemd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitemd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *sitemd.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if result != nil {
			title = result.Title
			size = len(result.ContentHTML)
		}
		e.logger.Debug("extract",
			"title", title,
			"content_bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
