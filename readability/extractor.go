// Package readability provides a content extractor for pages whose layout
// matches none of the known WordPress containers.
package readability

import (
	"strings"

	"github.com/fwojciec/hugomirror"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements hugomirror.Extractor at compile time.
var _ hugomirror.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to locate the main content of a page by
// scoring its text density.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the readable article.
// The article excerpt is reported as the description.
func (e *Extractor) Extract(rawHTML string) (*hugomirror.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, hugomirror.Errorf(hugomirror.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &hugomirror.ExtractResult{
		Title:       article.Title,
		Description: article.Excerpt,
		ContentHTML: article.Content,
	}, nil
}
