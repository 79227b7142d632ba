package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/hugomirror"
	"github.com/fwojciec/hugomirror/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where BundleWriter is expected
	var _ hugomirror.BundleWriter = &mock.BundleWriter{}
}

func TestBundleWriter_WriteBundle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteBundleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *hugomirror.Bundle
		w := &mock.BundleWriter{
			WriteBundleFn: func(_ context.Context, b *hugomirror.Bundle) error {
				calledWith = b
				return nil
			},
		}

		b := &hugomirror.Bundle{
			Slug:    "about",
			Title:   "About",
			Content: "<p>hi</p>",
		}

		err := w.WriteBundle(context.Background(), b)

		require.NoError(t, err)
		assert.Equal(t, b, calledWith)
	})
}
