package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/hugomirror"
)

// IndexFile is the page file looked up in the mirror root and its subdirectories.
const IndexFile = "index.html"

// DefaultSkipDirs are mirror directories that hold WordPress internals rather
// than pages.
var DefaultSkipDirs = []string{"wp-content", "wp-includes", "wp-json", "cdn-cgi", "comments", "feed"}

// Ensure MirrorSource implements hugomirror.MirrorSource at compile time.
var _ hugomirror.MirrorSource = (*MirrorSource)(nil)

// MirrorSource discovers pages in a mirror directory. Only the mirror root
// and its immediate subdirectories are considered.
type MirrorSource struct {
	dir  string
	skip map[string]bool
}

// NewMirrorSource creates a MirrorSource over dir, ignoring the named
// subdirectories.
func NewMirrorSource(dir string, skip []string) *MirrorSource {
	s := &MirrorSource{dir: dir, skip: make(map[string]bool, len(skip))}
	for _, name := range skip {
		s.skip[name] = true
	}
	return s
}

// Pages returns the home page, if present, followed by every subdirectory
// holding an index.html, sorted by name.
func (s *MirrorSource) Pages(ctx context.Context) ([]*hugomirror.MirrorPage, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, hugomirror.Errorf(hugomirror.ENOTFOUND, "mirror directory %q not found", s.dir)
		}
		return nil, err
	}

	var pages []*hugomirror.MirrorPage

	home := filepath.Join(s.dir, IndexFile)
	if isFile(home) {
		pages = append(pages, &hugomirror.MirrorPage{Path: home, Home: true})
	}

	// os.ReadDir returns entries sorted by filename.
	for _, e := range entries {
		if !e.IsDir() || s.skip[e.Name()] {
			continue
		}
		path := filepath.Join(s.dir, e.Name(), IndexFile)
		if !isFile(path) {
			continue
		}
		pages = append(pages, &hugomirror.MirrorPage{Slug: e.Name(), Path: path})
	}

	return pages, nil
}

// ReadPage returns the page HTML with invalid UTF-8 sequences dropped.
func (s *MirrorSource) ReadPage(ctx context.Context, page *hugomirror.MirrorPage) (string, error) {
	data, err := os.ReadFile(page.Path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
