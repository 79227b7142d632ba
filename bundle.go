package hugomirror

import "context"

// Format selects the body format of written bundles.
type Format string

// Format constants for BundleWriter implementations.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Ext returns the file extension used for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatMarkdown {
		return "md"
	}
	return "html"
}

// Bundle represents one Hugo content file: front matter plus body.
type Bundle struct {
	Slug        string
	Home        bool
	Title       string
	Description string
	Draft       bool
	Content     string
}

// Validate returns an error if the bundle cannot be written.
func (b *Bundle) Validate() error {
	if !b.Home && b.Slug == "" {
		return Errorf(EINVALID, "bundle slug required")
	}
	return nil
}

// BundleWriter writes content bundles to storage.
type BundleWriter interface {
	// WriteBundle writes the bundle, replacing any existing file.
	WriteBundle(ctx context.Context, b *Bundle) error
}
