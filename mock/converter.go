package mock

import (
	"context"

	"github.com/fwojciec/dochtml"
)

var _ dochtml.MarkupConverter = (*MarkupConverter)(nil)

// MarkupConverter is a mock implementation of dochtml.MarkupConverter.
type MarkupConverter struct {
	ConvertMarkupFn func(ctx context.Context, path string, from, to dochtml.Format) (string, error)
}

func (c *MarkupConverter) ConvertMarkup(ctx context.Context, path string, from, to dochtml.Format) (string, error) {
	return c.ConvertMarkupFn(ctx, path, from, to)
}

var _ dochtml.MarkdownConverter = (*MarkdownConverter)(nil)

// MarkdownConverter is a mock implementation of dochtml.MarkdownConverter.
type MarkdownConverter struct {
	ConvertFn func(html string) (string, error)
}

func (c *MarkdownConverter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ dochtml.DocumentConverter = (*DocumentConverter)(nil)

// DocumentConverter is a mock implementation of dochtml.DocumentConverter.
type DocumentConverter struct {
	ConvertFn func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error)
}

func (c *DocumentConverter) Convert(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
	return c.ConvertFn(ctx, req)
}
