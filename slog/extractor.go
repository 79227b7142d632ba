package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hugomirror"
)

// Ensure LoggingExtractor implements hugomirror.Extractor.
var _ hugomirror.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging. Pages whose
// content region could not be found are logged at warn level.
type LoggingExtractor struct {
	next   hugomirror.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next hugomirror.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *hugomirror.ExtractResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract", "bytes", len(html), "duration", time.Since(begin), "err", err)
			return
		}
		level := slog.LevelDebug
		if result.ContentHTML == "" {
			level = slog.LevelWarn
		}
		e.logger.Log(context.Background(), level, "extract",
			"title", result.Title,
			"bytes", len(html),
			"content_bytes", len(result.ContentHTML),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
