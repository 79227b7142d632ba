package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/hugomirror"
	"github.com/fwojciec/hugomirror/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorSource_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ hugomirror.MirrorSource = &fs.MirrorSource{}
}

func TestMirrorSource_Pages(t *testing.T) {
	t.Parallel()

	t.Run("lists home first then sorted content directories", func(t *testing.T) {
		t.Parallel()

		// Given a mirror with a home page, pages and WordPress internals
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "index.html"), "home")
		writeFile(t, filepath.Join(dir, "reglement", "index.html"), "r")
		writeFile(t, filepath.Join(dir, "about", "index.html"), "a")
		writeFile(t, filepath.Join(dir, "wp-json", "index.html"), "json")
		writeFile(t, filepath.Join(dir, "feed", "index.html"), "feed")
		writeFile(t, filepath.Join(dir, "wp-content", "uploads", "a.jpg"), "jpg")
		writeFile(t, filepath.Join(dir, "robots.txt"), "txt")

		// When I list pages
		pages, err := fs.NewMirrorSource(dir, fs.DefaultSkipDirs).Pages(context.Background())

		// Then home comes first and internals are skipped
		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.True(t, pages[0].Home)
		assert.Equal(t, filepath.Join(dir, "index.html"), pages[0].Path)
		assert.Equal(t, "about", pages[1].Slug)
		assert.Equal(t, "reglement", pages[2].Slug)
		assert.Equal(t, filepath.Join(dir, "reglement", "index.html"), pages[2].Path)
	})

	t.Run("skips directories without index page", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "empty", "other.html"), "x")
		writeFile(t, filepath.Join(dir, "news", "index.html"), "n")

		pages, err := fs.NewMirrorSource(dir, nil).Pages(context.Background())

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "news", pages[0].Slug)
		assert.False(t, pages[0].Home)
	})

	t.Run("returns not found for missing mirror", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewMirrorSource(filepath.Join(t.TempDir(), "nope"), nil).Pages(context.Background())

		require.Error(t, err)
		assert.Equal(t, hugomirror.ENOTFOUND, hugomirror.ErrorCode(err))
	})
}

func TestMirrorSource_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("drops invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>caf\xe9 ok</p>"), 0644))

		html, err := fs.NewMirrorSource(dir, nil).ReadPage(context.Background(), &hugomirror.MirrorPage{Path: path, Home: true})

		require.NoError(t, err)
		assert.Equal(t, "<p>caf ok</p>", html)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, err := fs.NewMirrorSource(dir, nil).ReadPage(context.Background(), &hugomirror.MirrorPage{Path: filepath.Join(dir, "gone.html")})

		require.Error(t, err)
	})
}
