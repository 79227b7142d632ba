package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/fwojciec/hugomirror"
	"github.com/fwojciec/hugomirror/goquery"
	"github.com/fwojciec/hugomirror/importer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Importer   *importer.Importer
	ContentDir string
	StaticDir  string
	Format     hugomirror.Format
}

// CLI defines the command-line interface structure for Kong.
// Every flag has a default, so running without arguments imports the mirror
// in the current directory.
type CLI struct {
	Root      string `default:"." env:"HUGOMIRROR_ROOT" help:"Site root that relative paths resolve against"`
	Mirror    string `default:"_mirror" help:"Mirror directory"`
	Content   string `default:"content" help:"Hugo content directory"`
	Static    string `default:"static" help:"Hugo static directory"`
	SiteHost  string `default:"${site_host}" env:"HUGOMIRROR_SITE_HOST" help:"Host whose absolute links become root-relative"`
	SiteName  string `default:"${site_name}" help:"Site name suffix stripped from page titles"`
	HomeTitle string `default:"${home_title}" help:"Title of the home page bundle"`
	Format    string `default:"html" enum:"html,markdown" help:"Body format of written bundles (html, markdown)"`
	Fallback  string `default:"none" enum:"none,readability,trafilatura" help:"Extractor for pages without a known content container (none, readability, trafilatura)"`
	Verbose   bool   `short:"v" help:"Log every page"`
}

// path resolves p against the site root unless it is absolute.
func (c *CLI) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// ImportCmd runs the import.
type ImportCmd struct{}

// vars are interpolated into CLI defaults.
var vars = map[string]string{
	"site_host":  hugomirror.DefaultSiteHost,
	"site_name":  goquery.DefaultSiteName,
	"home_title": importer.DefaultHomeTitle,
}
