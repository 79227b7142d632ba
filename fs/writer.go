// Package fs provides file-based access to the mirror and the Hugo site tree.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/hugomirror"
	"gopkg.in/yaml.v3"
)

// BundlePath returns the path of a bundle relative to the content directory.
// Example: slug "about" → about/index.html, home → _index.html
func BundlePath(b *hugomirror.Bundle, format hugomirror.Format) string {
	name := "index." + format.Ext()
	if b.Home {
		return "_" + name
	}
	return filepath.Join(b.Slug, name)
}

// FormatBundle formats a bundle with YAML front matter.
// The description is omitted when empty.
func FormatBundle(b *hugomirror.Bundle) (string, error) {
	fm := &yaml.Node{Kind: yaml.MappingNode}
	addField(fm, "title", quoted(b.Title))
	if b.Description != "" {
		addField(fm, "description", quoted(b.Description))
	}
	addField(fm, "draft", &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!bool",
		Value: strconv.FormatBool(b.Draft),
	})

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", hugomirror.Errorf(hugomirror.EINTERNAL, "failed to encode front matter: %v", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(header)
	sb.WriteString("---\n")
	sb.WriteString(b.Content)
	return sb.String(), nil
}

func addField(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: s,
	}
}

// Ensure BundleWriter implements hugomirror.BundleWriter at compile time.
var _ hugomirror.BundleWriter = (*BundleWriter)(nil)

// BundleWriter writes bundles as Hugo content files under a directory.
type BundleWriter struct {
	contentDir string
	format     hugomirror.Format
}

// NewBundleWriter creates a new BundleWriter that writes to contentDir.
func NewBundleWriter(contentDir string, format hugomirror.Format) *BundleWriter {
	return &BundleWriter{contentDir: contentDir, format: format}
}

// WriteBundle writes a bundle to disk, replacing any existing file.
func (w *BundleWriter) WriteBundle(ctx context.Context, b *hugomirror.Bundle) error {
	if err := b.Validate(); err != nil {
		return err
	}

	content, err := FormatBundle(b)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.contentDir, BundlePath(b, w.format))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}
