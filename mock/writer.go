package mock

import (
	"context"

	"github.com/fwojciec/dochtml"
)

var _ dochtml.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of dochtml.OutputWriter.
type OutputWriter struct {
	WriteFileFn func(ctx context.Context, path string, data []byte) error
}

func (w *OutputWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	return w.WriteFileFn(ctx, path, data)
}
