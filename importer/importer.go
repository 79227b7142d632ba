// Package importer orchestrates the conversion of a site mirror into Hugo
// content bundles. It copies uploaded assets, then extracts, normalizes and
// writes every mirrored page in order.
package importer

import (
	"context"
	"fmt"

	"github.com/fwojciec/hugomirror"
)

// DefaultHomeTitle is the title given to the home page bundle.
const DefaultHomeTitle = "Accueil"

// Importer converts a mirror into content bundles. Pages are processed one at
// a time; the first error stops the run, leaving earlier bundles in place.
type Importer struct {
	Source     hugomirror.MirrorSource
	Assets     hugomirror.AssetCopier
	Extractor  hugomirror.Extractor
	Normalizer *hugomirror.Normalizer
	Writer     hugomirror.BundleWriter

	// Converter, if set, converts normalized markup before writing.
	Converter hugomirror.Converter

	// HomeTitle replaces the extracted title of the home page when set.
	HomeTitle string
}

// Result holds the outcome of an import run.
type Result struct {
	Written      int
	AssetsCopied bool
}

// ProgressEvent reports a written bundle.
type ProgressEvent struct {
	Page      *hugomirror.MirrorPage
	Completed int
	Total     int
}

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// Run copies assets and imports every page. The returned Result reflects the
// work done before any error.
func (im *Importer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	result := &Result{}

	copied, err := im.Assets.CopyAssets(ctx)
	if err != nil {
		return result, fmt.Errorf("copy assets: %w", err)
	}
	result.AssetsCopied = copied

	pages, err := im.Source.Pages(ctx)
	if err != nil {
		return result, fmt.Errorf("discover pages: %w", err)
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := im.importPage(ctx, page); err != nil {
			return result, fmt.Errorf("page %q: %w", page.Name(), err)
		}
		result.Written++

		if progress != nil {
			progress(ProgressEvent{
				Page:      page,
				Completed: result.Written,
				Total:     len(pages),
			})
		}
	}

	return result, nil
}

func (im *Importer) importPage(ctx context.Context, page *hugomirror.MirrorPage) error {
	html, err := im.Source.ReadPage(ctx, page)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	extracted, err := im.Extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	content := extracted.ContentHTML
	if im.Normalizer != nil {
		content = im.Normalizer.Normalize(content)
	}
	if im.Converter != nil {
		content, err = im.Converter.Convert(content)
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}
	}

	return im.Writer.WriteBundle(ctx, &hugomirror.Bundle{
		Slug:        page.Slug,
		Home:        page.Home,
		Title:       im.title(page, extracted),
		Description: extracted.Description,
		Content:     content,
	})
}

// title picks the bundle title: the configured home title, then the
// extracted title, then the slug.
func (im *Importer) title(page *hugomirror.MirrorPage, extracted *hugomirror.ExtractResult) string {
	if page.Home && im.HomeTitle != "" {
		return im.HomeTitle
	}
	if extracted.Title != "" {
		return extracted.Title
	}
	return page.Slug
}
