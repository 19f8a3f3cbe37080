// Package convert dispatches uploaded documents to the conversion pipeline
// matching their format and writes the resulting HTML.
package convert

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/dochtml"
)

// Ensure Dispatcher implements dochtml.DocumentConverter at compile time.
var _ dochtml.DocumentConverter = (*Dispatcher)(nil)

// Dispatcher selects a pipeline by file extension:
//
//	.docx  Word loader → paragraph-mode rendering
//	.pdf   Validator (optional) → PDF loader → line filtering → page-mode rendering
//	.rtf   Markup converter output written as-is
//
// A Dispatcher is read-only after construction and safe for concurrent use;
// every call allocates its own model and set of seen lines.
type Dispatcher struct {
	Word      dochtml.DocumentLoader
	PDF       dochtml.DocumentLoader
	Validator dochtml.Validator
	Markup    dochtml.MarkupConverter
	Renderer  dochtml.Renderer
	Output    dochtml.OutputWriter

	// Filter drops boilerplate lines from PDF text. The zero value uses
	// dochtml.DefaultLineFilter.
	Filter *dochtml.LineFilter

	// OnStatus, if set, is called on every state change.
	OnStatus func(req dochtml.ConversionRequest, status dochtml.Status)
}

// Convert converts one document. Output is written only once rendering has
// completed, so a failed conversion never leaves a partial file behind.
func (d *Dispatcher) Convert(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
	begin := time.Now()
	d.setStatus(req, dochtml.StatusReceived)

	if err := req.Validate(); err != nil {
		d.setStatus(req, dochtml.StatusFailed)
		return nil, err
	}

	filename := req.Filename
	if filename == "" {
		filename = req.SourcePath
	}
	format, err := dochtml.DetectFormat(filename)
	if err != nil {
		d.setStatus(req, dochtml.StatusFailed)
		return nil, err
	}
	d.setStatus(req, dochtml.StatusDispatched)

	out, err := d.run(ctx, format, req.SourcePath, title(filename))
	if err == nil {
		err = d.Output.WriteFile(ctx, req.OutputPath, out)
	}
	if err != nil {
		d.setStatus(req, dochtml.StatusFailed)
		return nil, classify(format, err)
	}

	d.setStatus(req, dochtml.StatusConverted)
	return &dochtml.ConversionResult{
		Request:  req,
		Format:   format,
		Status:   dochtml.StatusConverted,
		HTML:     out,
		Duration: time.Since(begin),
	}, nil
}

func (d *Dispatcher) run(ctx context.Context, format dochtml.Format, path, title string) ([]byte, error) {
	switch format {
	case dochtml.FormatDOCX:
		model, err := d.Word.Load(ctx, path, format)
		if err != nil {
			return nil, err
		}
		return d.Renderer.RenderWord(title, model)

	case dochtml.FormatPDF:
		if d.Validator != nil {
			if err := d.Validator.Validate(ctx, path); err != nil {
				return nil, err
			}
		}
		model, err := d.PDF.Load(ctx, path, format)
		if err != nil {
			return nil, err
		}
		return d.Renderer.RenderPages(title, dochtml.NormalizePages(model.Pages, d.filter()))

	case dochtml.FormatRTF:
		out, err := d.Markup.ConvertMarkup(ctx, path, format, dochtml.FormatHTML)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil

	default:
		return nil, dochtml.Errorf(dochtml.EUNSUPPORTED, "no pipeline for format %q", format)
	}
}

func (d *Dispatcher) filter() dochtml.LineFilter {
	if d.Filter == nil {
		return dochtml.DefaultLineFilter
	}
	return *d.Filter
}

func (d *Dispatcher) setStatus(req dochtml.ConversionRequest, status dochtml.Status) {
	if d.OnStatus != nil {
		d.OnStatus(req, status)
	}
}

// classify keeps unreadable and unsupported errors as they are and wraps
// every other failure as ECONVERSION with the cause preserved.
func classify(format dochtml.Format, err error) error {
	switch dochtml.ErrorCode(err) {
	case dochtml.EUNREADABLE, dochtml.EUNSUPPORTED:
		return err
	}
	return dochtml.WrapError(dochtml.ECONVERSION, err, "convert %s document", format)
}

// title derives the document title from the original filename.
func title(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
