package mock

import (
	"context"

	"github.com/fwojciec/hugomirror"
)

var _ hugomirror.BundleWriter = (*BundleWriter)(nil)

// BundleWriter is a mock implementation of hugomirror.BundleWriter.
type BundleWriter struct {
	WriteBundleFn func(ctx context.Context, b *hugomirror.Bundle) error
}

func (w *BundleWriter) WriteBundle(ctx context.Context, b *hugomirror.Bundle) error {
	return w.WriteBundleFn(ctx, b)
}
