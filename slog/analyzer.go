package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitemd"
)

var _ sitemd.PageAnalyzer = (*LoggingPageAnalyzer)(nil)

// LoggingPageAnalyzer wraps a PageAnalyzer with debug logging.
type LoggingPageAnalyzer struct {
	next   sitemd.PageAnalyzer
	logger *slog.Logger
}

// NewLoggingPageAnalyzer creates a new LoggingPageAnalyzer.
func NewLoggingPageAnalyzer(next sitemd.PageAnalyzer, logger *slog.Logger) *LoggingPageAnalyzer {
	return &LoggingPageAnalyzer{next: next, logger: logger}
}

// ScoreContainers delegates to the wrapped analyzer and logs the operation.
func (a *LoggingPageAnalyzer) ScoreContainers(html string) (candidates []sitemd.SelectorCandidate, err error) {
	defer func(begin time.Time) {
		a.logger.Debug("score containers",
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.ScoreContainers(html)
}

// DetectBoilerplate delegates to the wrapped analyzer and logs the operation.
func (a *LoggingPageAnalyzer) DetectBoilerplate(html string) (set *sitemd.BoilerplateSet, err error) {
	defer func(begin time.Time) {
		var found int
		if set != nil {
			found = set.Len()
		}
		a.logger.Debug("detect boilerplate",
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.DetectBoilerplate(html)
}
