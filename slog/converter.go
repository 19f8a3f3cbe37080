package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dochtml"
)

// Ensure LoggingMarkupConverter implements dochtml.MarkupConverter.
var _ dochtml.MarkupConverter = (*LoggingMarkupConverter)(nil)

// LoggingMarkupConverter wraps a MarkupConverter with logging.
type LoggingMarkupConverter struct {
	next   dochtml.MarkupConverter
	logger *slog.Logger
}

// NewLoggingMarkupConverter creates a new LoggingMarkupConverter.
func NewLoggingMarkupConverter(next dochtml.MarkupConverter, logger *slog.Logger) *LoggingMarkupConverter {
	return &LoggingMarkupConverter{next: next, logger: logger}
}

// ConvertMarkup delegates to the wrapped converter and logs output size.
func (c *LoggingMarkupConverter) ConvertMarkup(ctx context.Context, path string, from, to dochtml.Format) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("convert markup",
			"path", path,
			"from", from,
			"to", to,
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ConvertMarkup(ctx, path, from, to)
}

// Ensure LoggingConverter implements dochtml.DocumentConverter.
var _ dochtml.DocumentConverter = (*LoggingConverter)(nil)

// LoggingConverter wraps a DocumentConverter and logs one line per
// conversion. Failures are logged at warn level with their error code.
type LoggingConverter struct {
	next   dochtml.DocumentConverter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next dochtml.DocumentConverter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter.
func (c *LoggingConverter) Convert(ctx context.Context, req dochtml.ConversionRequest) (res *dochtml.ConversionResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.Warn("conversion failed",
				"file", req.Filename,
				"code", dochtml.ErrorCode(err),
				"duration", time.Since(begin),
				"err", dochtml.ErrorMessage(err),
			)
			return
		}
		var format dochtml.Format
		var size int
		if res != nil {
			format, size = res.Format, len(res.HTML)
		}
		c.logger.Info("conversion",
			"file", req.Filename,
			"format", format,
			"output", req.OutputPath,
			"bytes", size,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Convert(ctx, req)
}
