package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/hugomirror"
	"github.com/fwojciec/hugomirror/fs"
	"github.com/fwojciec/hugomirror/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	progress := func(e importer.ProgressEvent) {
		b := &hugomirror.Bundle{Slug: e.Page.Slug, Home: e.Page.Home}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", filepath.Join(deps.ContentDir, fs.BundlePath(b, deps.Format)))
	}

	result, err := deps.Importer.Run(deps.Ctx, progress)
	if result != nil && result.AssetsCopied {
		fmt.Fprintf(deps.Stdout, "Copied assets to %s\n", filepath.Join(deps.StaticDir, "wp-content"))
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d pages\n", result.Written)
	return nil
}

// errorText prefers the application message for application errors.
func errorText(err error) string {
	if hugomirror.ErrorCode(err) == hugomirror.EINTERNAL {
		return err.Error()
	}
	return hugomirror.ErrorMessage(err)
}
