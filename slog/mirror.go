package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hugomirror"
)

// Ensure LoggingMirrorSource implements hugomirror.MirrorSource.
var _ hugomirror.MirrorSource = (*LoggingMirrorSource)(nil)

// LoggingMirrorSource wraps a MirrorSource with logging.
type LoggingMirrorSource struct {
	next   hugomirror.MirrorSource
	logger *slog.Logger
}

// NewLoggingMirrorSource creates a new LoggingMirrorSource.
func NewLoggingMirrorSource(next hugomirror.MirrorSource, logger *slog.Logger) *LoggingMirrorSource {
	return &LoggingMirrorSource{next: next, logger: logger}
}

// Pages delegates to the wrapped source and logs the number of pages found.
func (s *LoggingMirrorSource) Pages(ctx context.Context) (pages []*hugomirror.MirrorPage, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discover pages",
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pages(ctx)
}

// ReadPage delegates to the wrapped source.
func (s *LoggingMirrorSource) ReadPage(ctx context.Context, page *hugomirror.MirrorPage) (html string, err error) {
	defer func() {
		s.logger.Debug("read page",
			"page", page.Name(),
			"path", page.Path,
			"bytes", len(html),
			"err", err,
		)
	}()
	return s.next.ReadPage(ctx, page)
}
