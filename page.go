package hugomirror

import "context"

// MirrorPage represents one HTML document in the mirror.
type MirrorPage struct {
	// Slug is the mirror directory name, used verbatim as the bundle key.
	// Empty for the home page.
	Slug string

	// Path is the filesystem path of the page's index.html.
	Path string

	// Home marks the mirror's root index.html.
	Home bool
}

// Name returns a label for the page suitable for logs and error messages.
func (p *MirrorPage) Name() string {
	if p.Home {
		return "(home)"
	}
	return p.Slug
}

// MirrorSource discovers and reads pages from a local mirror.
type MirrorSource interface {
	// Pages returns the home page first, if present, followed by the
	// content pages in a stable order.
	Pages(ctx context.Context) ([]*MirrorPage, error)

	// ReadPage returns the HTML of a mirrored page.
	ReadPage(ctx context.Context, page *MirrorPage) (string, error)
}

// AssetCopier copies the mirror's uploaded media into the site's static tree.
type AssetCopier interface {
	// CopyAssets copies the asset tree unless the destination already exists.
	// Reports whether a copy was performed.
	CopyAssets(ctx context.Context) (bool, error)
}
