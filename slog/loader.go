package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dochtml"
)

// Ensure LoggingLoader implements dochtml.DocumentLoader.
var _ dochtml.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with logging.
type LoggingLoader struct {
	next   dochtml.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next dochtml.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the size of the model.
func (l *LoggingLoader) Load(ctx context.Context, path string, format dochtml.Format) (m *dochtml.Model, err error) {
	defer func(begin time.Time) {
		var paragraphs, tables, pages int
		if m != nil {
			paragraphs, tables, pages = len(m.Paragraphs), len(m.Tables), len(m.Pages)
		}
		l.logger.Debug("load",
			"path", path,
			"format", format,
			"paragraphs", paragraphs,
			"tables", tables,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path, format)
}

// Ensure LoggingValidator implements dochtml.Validator.
var _ dochtml.Validator = (*LoggingValidator)(nil)

// LoggingValidator wraps a Validator with logging.
type LoggingValidator struct {
	next   dochtml.Validator
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator.
func NewLoggingValidator(next dochtml.Validator, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, logger: logger}
}

// Validate delegates to the wrapped validator.
func (v *LoggingValidator) Validate(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		v.logger.Debug("validate",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.Validate(ctx, path)
}
