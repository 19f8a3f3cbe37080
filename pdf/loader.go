// Package pdf loads PDF documents into the dochtml model using
// github.com/ledongthuc/pdf. Only the embedded text layer is read.
package pdf

import (
	"context"
	"os"

	"github.com/fwojciec/dochtml"
	"github.com/ledongthuc/pdf"
)

// Default layout settings.
const (
	DefaultCellGap      = 1.5
	DefaultMinTableRows = 2
)

// Ensure Loader implements dochtml.DocumentLoader at compile time.
var _ dochtml.DocumentLoader = (*Loader)(nil)

// Loader reads PDF pages, their text and the tables found in their layout.
// It holds no mutable state and is safe for concurrent use.
type Loader struct {
	layout layout
}

// Option configures a Loader.
type Option func(*Loader)

// WithCellGap sets the horizontal gap, in multiples of the font size,
// that separates two table cells on the same row.
// Defaults to DefaultCellGap.
func WithCellGap(factor float64) Option {
	return func(l *Loader) {
		l.layout.cellGap = factor
	}
}

// WithMinTableRows sets how many consecutive multi-cell rows make a table.
// Defaults to DefaultMinTableRows.
func WithMinTableRows(n int) Option {
	return func(l *Loader) {
		l.layout.minTableRows = n
	}
}

// NewLoader creates a new Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{layout: layout{
		cellGap:      DefaultCellGap,
		minTableRows: DefaultMinTableRows,
	}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every page of the PDF at path in document order.
// The parser panics on some malformed files; panics are reported as EUNREADABLE.
// The file is closed on every path, panics included.
func (l *Loader) Load(ctx context.Context, path string, format dochtml.Format) (model *dochtml.Model, err error) {
	if format != dochtml.FormatPDF {
		return nil, dochtml.Errorf(dochtml.EUNSUPPORTED, "pdf loader cannot read %q documents", format)
	}

	defer func() {
		if r := recover(); r != nil {
			model = nil
			err = dochtml.Errorf(dochtml.EUNREADABLE, "malformed pdf: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, dochtml.WrapError(dochtml.EUNREADABLE, err, "open pdf")
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return nil, dochtml.WrapError(dochtml.EUNREADABLE, err, "stat pdf")
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return nil, dochtml.WrapError(dochtml.EUNREADABLE, err, "read pdf")
	}

	numPages := r.NumPage()
	model = &dochtml.Model{
		Format: dochtml.FormatPDF,
		Pages:  make([]dochtml.Page, 0, numPages),
	}

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := dochtml.Page{Number: i}
		p := r.Page(i)
		if !p.V.IsNull() {
			rows := l.layout.rows(glyphs(p.Content().Text))
			page.Text = pageText(rows)
			page.Tables = l.layout.tables(rows)
		}
		model.Pages = append(model.Pages, page)
	}

	return model, nil
}

func glyphs(texts []pdf.Text) []glyph {
	out := make([]glyph, 0, len(texts))
	for _, t := range texts {
		out = append(out, glyph{X: t.X, Y: t.Y, W: t.W, Size: t.FontSize, S: t.S})
	}
	return out
}
