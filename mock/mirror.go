package mock

import (
	"context"

	"github.com/fwojciec/hugomirror"
)

// Compile-time interface verification.
var (
	_ hugomirror.MirrorSource = (*MirrorSource)(nil)
	_ hugomirror.AssetCopier  = (*AssetCopier)(nil)
)

// MirrorSource is a mock implementation of hugomirror.MirrorSource.
type MirrorSource struct {
	PagesFn    func(ctx context.Context) ([]*hugomirror.MirrorPage, error)
	ReadPageFn func(ctx context.Context, page *hugomirror.MirrorPage) (string, error)
}

func (s *MirrorSource) Pages(ctx context.Context) ([]*hugomirror.MirrorPage, error) {
	return s.PagesFn(ctx)
}

func (s *MirrorSource) ReadPage(ctx context.Context, page *hugomirror.MirrorPage) (string, error) {
	return s.ReadPageFn(ctx, page)
}

// AssetCopier is a mock implementation of hugomirror.AssetCopier.
type AssetCopier struct {
	CopyAssetsFn func(ctx context.Context) (bool, error)
}

func (c *AssetCopier) CopyAssets(ctx context.Context) (bool, error) {
	return c.CopyAssetsFn(ctx)
}
