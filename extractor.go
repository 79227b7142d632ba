package hugomirror

// ExtractResult holds the extracted content from a mirrored page.
type ExtractResult struct {
	// Title is the page title with the site-name suffix removed.
	// Empty when the page has no usable title element.
	Title string

	// Description is the content of the description meta tag, if any.
	Description string

	// ContentHTML is the markup of the page's main content region.
	// Empty when no known content container was found.
	ContentHTML string
}

// Extractor extracts the main content region and metadata from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the page metadata and content.
	// Missing structures degrade to empty fields rather than errors.
	Extract(html string) (*ExtractResult, error)
}
