// Package goquery extracts page metadata and the main content region from
// mirrored WordPress pages using CSS selectors.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hugomirror"
)

// DefaultSiteName is the site-name suffix stripped from page titles.
const DefaultSiteName = "Championnat"

// Ensure Extractor implements hugomirror.Extractor at compile time.
var _ hugomirror.Extractor = (*Extractor)(nil)

var reElementorType = regexp.MustCompile(`wp-(page|post)`)

// container is one step of the content lookup. Outer containers are
// serialized with their own tag, others contribute only their children.
type container struct {
	selector string
	outer    bool
	filter   func(int, *goquery.Selection) bool
}

// containers are tried in order; the first match wins.
var containers = []container{
	{selector: "main#content"},
	{selector: "main"},
	{selector: "div.page-content", outer: true},
	{selector: "div[data-elementor-type]", outer: true, filter: isElementorPage},
}

func isElementorPage(_ int, sel *goquery.Selection) bool {
	v, _ := sel.Attr("data-elementor-type")
	return reElementorType.MatchString(v)
}

// Extractor pulls title, description and main content from mirrored pages.
type Extractor struct {
	titleSuffix *regexp.Regexp
	fallback    hugomirror.Extractor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSiteName sets the site name whose " - <name>..." suffix is stripped
// from titles. Defaults to DefaultSiteName.
func WithSiteName(name string) Option {
	return func(e *Extractor) {
		e.titleSuffix = siteSuffix(name)
	}
}

// WithFallback sets an extractor consulted for content when none of the
// known containers is present.
func WithFallback(fallback hugomirror.Extractor) Option {
	return func(e *Extractor) {
		e.fallback = fallback
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		titleSuffix: siteSuffix(DefaultSiteName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func siteSuffix(name string) *regexp.Regexp {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return regexp.MustCompile(`\s*-\s*` + regexp.QuoteMeta(name) + `.*$`)
}

// Extract parses html and returns its title, description and content.
// Missing elements leave the corresponding fields empty.
func (e *Extractor) Extract(html string) (*hugomirror.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hugomirror.Errorf(hugomirror.EINVALID, "failed to parse HTML: %v", err)
	}

	content, found, err := mainContent(doc)
	if err != nil {
		return nil, err
	}

	if !found && e.fallback != nil {
		res, err := e.fallback.Extract(html)
		if err != nil {
			return nil, err
		}
		content = res.ContentHTML
	}

	return &hugomirror.ExtractResult{
		Title:       e.title(doc),
		Description: description(doc),
		ContentHTML: content,
	}, nil
}

func (e *Extractor) title(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if e.titleSuffix != nil {
		title = e.titleSuffix.ReplaceAllString(title, "")
	}
	return strings.TrimSpace(title)
}

func description(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

// mainContent returns the markup of the first matching container.
func mainContent(doc *goquery.Document) (string, bool, error) {
	for _, c := range containers {
		sel := doc.Find(c.selector)
		if c.filter != nil {
			sel = sel.FilterFunction(c.filter)
		}
		if sel.Length() == 0 {
			continue
		}

		sel = sel.First()
		var (
			markup string
			err    error
		)
		if c.outer {
			markup, err = goquery.OuterHtml(sel)
		} else {
			markup, err = sel.Html()
		}
		if err != nil {
			return "", false, hugomirror.Errorf(hugomirror.EINTERNAL, "failed to render %s: %v", c.selector, err)
		}
		return markup, true, nil
	}
	return "", false, nil
}
