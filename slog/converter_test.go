package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/dochtml"
	"github.com/fwojciec/dochtml/mock"
	docslog "github.com/fwojciec/dochtml/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMarkupConverter_ConvertMarkup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.MarkupConverter{
		ConvertMarkupFn: func(ctx context.Context, path string, from, to dochtml.Format) (string, error) {
			return "<html></html>", nil
		},
	}

	conv := docslog.NewLoggingMarkupConverter(inner, debugLogger(&buf))
	out, err := conv.ConvertMarkup(context.Background(), "notes.rtf", dochtml.FormatRTF, dochtml.FormatHTML)

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", out)
	output := buf.String()
	assert.Contains(t, output, "convert markup")
	assert.Contains(t, output, "from=rtf")
	assert.Contains(t, output, "to=html")
	assert.Contains(t, output, "bytes=13")
}

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs successful conversion", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				return &dochtml.ConversionResult{
					Request: req,
					Format:  dochtml.FormatDOCX,
					Status:  dochtml.StatusConverted,
					HTML:    []byte("<html></html>"),
				}, nil
			},
		}

		conv := docslog.NewLoggingConverter(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		res, err := conv.Convert(context.Background(), dochtml.ConversionRequest{
			SourcePath: "/tmp/upload", Filename: "letter.docx", OutputPath: "html_files/letter.html",
		})

		require.NoError(t, err)
		assert.Equal(t, dochtml.StatusConverted, res.Status)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=conversion")
		assert.Contains(t, output, "file=letter.docx")
		assert.Contains(t, output, "format=docx")
		assert.Contains(t, output, "output=html_files/letter.html")
		assert.Contains(t, output, "bytes=13")
	})

	t.Run("logs failure with code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				return nil, dochtml.WrapError(dochtml.ECONVERSION, errors.New("disk full"), "convert pdf document")
			},
		}

		conv := docslog.NewLoggingConverter(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := conv.Convert(context.Background(), dochtml.ConversionRequest{Filename: "scan.pdf"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "code=conversion_failed")
		assert.Contains(t, output, "disk full")
	})

	t.Run("logs success without a result", func(t *testing.T) {
		t.Parallel()

		// Given a converter that returns neither result nor error
		var buf bytes.Buffer
		inner := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				return nil, nil
			},
		}
		conv := docslog.NewLoggingConverter(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		// When I convert
		var res *dochtml.ConversionResult
		var err error
		require.NotPanics(t, func() {
			res, err = conv.Convert(context.Background(), dochtml.ConversionRequest{Filename: "empty.docx"})
		})

		// Then the line is still logged with zero size
		require.NoError(t, err)
		assert.Nil(t, res)
		output := buf.String()
		assert.Contains(t, output, "file=empty.docx")
		assert.Contains(t, output, "bytes=0")
	})
}
