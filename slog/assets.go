package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hugomirror"
)

// Ensure LoggingAssetCopier implements hugomirror.AssetCopier.
var _ hugomirror.AssetCopier = (*LoggingAssetCopier)(nil)

// LoggingAssetCopier wraps an AssetCopier with logging.
type LoggingAssetCopier struct {
	next   hugomirror.AssetCopier
	logger *slog.Logger
}

// NewLoggingAssetCopier creates a new LoggingAssetCopier.
func NewLoggingAssetCopier(next hugomirror.AssetCopier, logger *slog.Logger) *LoggingAssetCopier {
	return &LoggingAssetCopier{next: next, logger: logger}
}

// CopyAssets delegates to the wrapped copier and logs the operation.
func (c *LoggingAssetCopier) CopyAssets(ctx context.Context) (copied bool, err error) {
	defer func(begin time.Time) {
		c.logger.Info("copy assets",
			"copied", copied,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CopyAssets(ctx)
}
