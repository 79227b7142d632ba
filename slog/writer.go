package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/hugomirror"
)

// Ensure LoggingBundleWriter implements hugomirror.BundleWriter.
var _ hugomirror.BundleWriter = (*LoggingBundleWriter)(nil)

// LoggingBundleWriter wraps a BundleWriter with logging. Each bundle is
// logged with an xxhash digest of its body.
type LoggingBundleWriter struct {
	next   hugomirror.BundleWriter
	logger *slog.Logger
}

// NewLoggingBundleWriter creates a new LoggingBundleWriter.
func NewLoggingBundleWriter(next hugomirror.BundleWriter, logger *slog.Logger) *LoggingBundleWriter {
	return &LoggingBundleWriter{next: next, logger: logger}
}

// WriteBundle delegates to the wrapped writer and logs the operation.
func (w *LoggingBundleWriter) WriteBundle(ctx context.Context, b *hugomirror.Bundle) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write bundle",
			"slug", b.Slug,
			"home", b.Home,
			"title", b.Title,
			"bytes", len(b.Content),
			"sum", strconv.FormatUint(xxhash.Sum64String(b.Content), 16),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteBundle(ctx, b)
}
