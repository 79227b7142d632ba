package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/hugomirror"
)

// Ensure AssetCopier implements hugomirror.AssetCopier at compile time.
var _ hugomirror.AssetCopier = (*AssetCopier)(nil)

// AssetCopier copies the mirror's upload tree into the static directory.
// Files are copied to a temporary sibling of the destination, which is
// renamed into place once the copy completes.
type AssetCopier struct {
	src string
	dst string
}

// NewAssetCopier creates a new AssetCopier copying src to dst.
func NewAssetCopier(src, dst string) *AssetCopier {
	return &AssetCopier{src: src, dst: dst}
}

func (c *AssetCopier) tempDir() string {
	return c.dst + ".tmp"
}

// CopyAssets copies the source tree unless the destination already exists
// or the source is missing. Reports whether a copy was performed.
func (c *AssetCopier) CopyAssets(ctx context.Context) (bool, error) {
	if exists, err := dirExists(c.dst); err != nil || exists {
		return false, err
	}
	if exists, err := dirExists(c.src); err != nil || !exists {
		return false, err
	}

	// Leftovers of an interrupted run
	if err := os.RemoveAll(c.tempDir()); err != nil {
		return false, err
	}

	if err := copyTree(ctx, c.src, c.tempDir()); err != nil {
		_ = os.RemoveAll(c.tempDir())
		return false, err
	}

	if err := os.Rename(c.tempDir(), c.dst); err != nil {
		return false, err
	}
	return true, nil
}

func dirExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func copyTree(ctx context.Context, src, dst string) error {
	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0700)
		case info.Mode().IsRegular():
			return copyFile(path, target, info.Mode().Perm())
		default:
			// Symlinks and special files are not part of an upload tree.
			return nil
		}
	})
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
