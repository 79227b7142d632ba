package hugomirror

import (
	"regexp"
	"strings"
)

// DefaultSiteHost is the host of the mirrored site whose absolute links are
// rewritten to root-relative ones.
const DefaultSiteHost = "championnatavionpapier.fr"

var (
	reDataURISrc    = regexp.MustCompile(`\s+src="data:image[^"]*"`)
	reLazySrcset    = regexp.MustCompile(`\s*data-lazy-(?:srcset|sizes)="[^"]*"`)
	reLazySrc       = regexp.MustCompile(`data-lazy-src="([^"]+)"`)
	reBackgroundDiv = regexp.MustCompile(`(?s)<div([^>]*?)\sdata-background="([^"]+)"([^>]*)>.*?</div>`)
	reAriaLabel     = regexp.MustCompile(`aria-label="([^"]*)"`)
	reNoscript      = regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript>`)
	reParentAssets  = regexp.MustCompile(`(?:\.{1,2}/)+wp-content/`)
	reBareAssets    = regexp.MustCompile(`(^|[^/\w.-])wp-content/`)
	reDoubleSlash   = regexp.MustCompile(`(^|[\s"'=(,])/{2,}wp-content/`)
)

// Rule is a single named text substitution applied by a Normalizer.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Normalizer rewrites WordPress-specific markup into plain, root-relative HTML.
// Rules are plain text substitutions applied in a fixed order; the markup is
// never reparsed between rules, so malformed nesting may survive untouched.
type Normalizer struct {
	rules []Rule
}

// NewNormalizer returns a Normalizer that strips absolute links to siteHost.
// An empty siteHost disables origin stripping.
func NewNormalizer(siteHost string) *Normalizer {
	return &Normalizer{
		rules: []Rule{
			{Name: "data-uri-src", Apply: stripDataURISrc},
			{Name: "lazy-srcset", Apply: stripLazySrcset},
			{Name: "lazy-src", Apply: rewriteLazySrc},
			{Name: "background-div", Apply: backgroundDivToImg},
			{Name: "noscript", Apply: stripNoscript},
			{Name: "site-origin", Apply: originStripper(siteHost)},
			{Name: "asset-paths", Apply: normalizeAssetPaths},
		},
	}
}

// Rules returns the normalizer's rules in application order.
func (n *Normalizer) Rules() []Rule {
	return n.rules
}

// Normalize applies every rule to html in order.
func (n *Normalizer) Normalize(html string) string {
	for _, r := range n.rules {
		html = r.Apply(html)
	}
	return html
}

func stripDataURISrc(s string) string {
	return reDataURISrc.ReplaceAllString(s, "")
}

func stripLazySrcset(s string) string {
	return reLazySrcset.ReplaceAllString(s, "")
}

func rewriteLazySrc(s string) string {
	return reLazySrc.ReplaceAllString(s, `src="${1}"`)
}

// backgroundDivToImg replaces a div carrying a data-background image with an
// img element. The div's content up to the first closing div is dropped.
func backgroundDivToImg(s string) string {
	return reBackgroundDiv.ReplaceAllStringFunc(s, func(match string) string {
		m := reBackgroundDiv.FindStringSubmatch(match)
		url := m[2]
		var alt string
		if a := reAriaLabel.FindStringSubmatch(m[1] + " " + m[3]); a != nil {
			alt = a[1]
		}
		return `<img src="` + url + `" alt="` + alt + `" />`
	})
}

func stripNoscript(s string) string {
	return reNoscript.ReplaceAllString(s, "")
}

func originStripper(host string) func(string) string {
	host = strings.TrimSuffix(strings.TrimSpace(host), "/")
	if host == "" {
		return func(s string) string { return s }
	}
	re := regexp.MustCompile(`(?:https?:)?//(?:www\.)?` + regexp.QuoteMeta(host))
	return func(s string) string {
		return re.ReplaceAllString(s, "")
	}
}

func normalizeAssetPaths(s string) string {
	s = reParentAssets.ReplaceAllString(s, "/wp-content/")
	s = reBareAssets.ReplaceAllString(s, "${1}/wp-content/")
	return reDoubleSlash.ReplaceAllString(s, "${1}/wp-content/")
}
