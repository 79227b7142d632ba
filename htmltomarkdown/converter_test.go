package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/hugomirror"
	"github.com/fwojciec/hugomirror/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements hugomirror.Converter at compile time.
var _ hugomirror.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Bienvenue au championnat !</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Bienvenue au championnat !")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h2>Règlement</h2><h3>Catégories</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Règlement")
		assert.Contains(t, md, "### Catégories")
	})

	t.Run("keeps root-relative links and images", func(t *testing.T) {
		t.Parallel()

		html := `<p>Voir le <a href="/reglement/">règlement</a>.</p><img src="/wp-content/uploads/a.jpg" alt="Avion" />`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[règlement](/reglement/)")
		assert.Contains(t, md, "![Avion](/wp-content/uploads/a.jpg)")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Distance</li><li>Temps de vol</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Distance")
		assert.Contains(t, md, "- Temps de vol")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Nom</th><th>Distance</th></tr></thead>
<tbody><tr><td>Alice</td><td>21 m</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Nom")
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("returns empty body for blank input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(" \n ")

		require.NoError(t, err)
		assert.Empty(t, md)
	})
}
