package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/hugomirror"
	"github.com/fwojciec/hugomirror/mock"
	hmslog "github.com/fwojciec/hugomirror/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extracted page at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*hugomirror.ExtractResult, error) {
				return &hugomirror.ExtractResult{Title: "About", ContentHTML: "<p>hi</p>"}, nil
			},
		}

		result, err := hmslog.NewLoggingExtractor(inner, logger).Extract("<main><p>hi</p></main>")

		require.NoError(t, err)
		assert.Equal(t, "About", result.Title)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "title=About")
		assert.Contains(t, output, "content_bytes=9")
	})

	t.Run("warns when no content was found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*hugomirror.ExtractResult, error) {
				return &hugomirror.ExtractResult{Title: "Odd"}, nil
			},
		}

		_, err := hmslog.NewLoggingExtractor(inner, logger).Extract("<section></section>")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "content_bytes=0")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*hugomirror.ExtractResult, error) {
				return nil, errors.New("parse failed")
			},
		}

		_, err := hmslog.NewLoggingExtractor(inner, logger).Extract("x")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "err=\"parse failed\"")
	})
}
