package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/dochtml"
	"github.com/fwojciec/dochtml/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where OutputWriter is expected
	var _ dochtml.OutputWriter = &mock.OutputWriter{}
}

func TestOutputWriter_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteFileFn", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		w := &mock.OutputWriter{
			WriteFileFn: func(_ context.Context, path string, data []byte) error {
				gotPath, gotData = path, data
				return nil
			},
		}

		err := w.WriteFile(context.Background(), "html_files/form.html", []byte("<html></html>"))

		require.NoError(t, err)
		assert.Equal(t, "html_files/form.html", gotPath)
		assert.Equal(t, []byte("<html></html>"), gotData)
	})
}
