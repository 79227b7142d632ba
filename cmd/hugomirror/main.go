package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hugomirror"
	"github.com/fwojciec/hugomirror/fs"
	"github.com/fwojciec/hugomirror/goquery"
	"github.com/fwojciec/hugomirror/htmltomarkdown"
	"github.com/fwojciec/hugomirror/importer"
	"github.com/fwojciec/hugomirror/readability"
	hmslog "github.com/fwojciec/hugomirror/slog"
	"github.com/fwojciec/hugomirror/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hugomirror"),
		kong.Description("Convert a WordPress HTML mirror into Hugo content bundles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars(vars),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	mirrorDir := cli.path(cli.Mirror)
	if info, err := os.Stat(mirrorDir); err != nil || !info.IsDir() {
		fmt.Fprintln(stderr, "Hint: run from the site root or pass --root")
		return hugomirror.Errorf(hugomirror.ENOTFOUND, "mirror directory %q not found", mirrorDir)
	}

	contentDir := cli.path(cli.Content)
	staticDir := cli.path(cli.Static)
	for _, dir := range []string{contentDir, staticDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	format := hugomirror.Format(cli.Format)

	extractorOpts := []goquery.Option{goquery.WithSiteName(cli.SiteName)}
	switch cli.Fallback {
	case "readability":
		extractorOpts = append(extractorOpts, goquery.WithFallback(readability.NewExtractor()))
	case "trafilatura":
		extractorOpts = append(extractorOpts, goquery.WithFallback(trafilatura.NewExtractor()))
	}

	im := &importer.Importer{
		Source: hmslog.NewLoggingMirrorSource(
			fs.NewMirrorSource(mirrorDir, fs.DefaultSkipDirs), logger),
		Assets: hmslog.NewLoggingAssetCopier(
			fs.NewAssetCopier(filepath.Join(mirrorDir, "wp-content"), filepath.Join(staticDir, "wp-content")), logger),
		Extractor: hmslog.NewLoggingExtractor(
			goquery.NewExtractor(extractorOpts...), logger),
		Normalizer: hugomirror.NewNormalizer(cli.SiteHost),
		Writer: hmslog.NewLoggingBundleWriter(
			fs.NewBundleWriter(contentDir, format), logger),
		HomeTitle: cli.HomeTitle,
	}
	if format == hugomirror.FormatMarkdown {
		im.Converter = htmltomarkdown.NewConverter()
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Importer:   im,
		ContentDir: contentDir,
		StaticDir:  staticDir,
		Format:     format,
	}

	cmd := &ImportCmd{}
	return cmd.Run(deps)
}
