// Package etree loads word-processing (.docx) documents into the dochtml
// model by parsing word/document.xml with github.com/beevik/etree.
package etree

import (
	"archive/zip"
	"context"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/dochtml"
)

// documentPart is the main document part inside a .docx container.
const documentPart = "word/document.xml"

// Ensure Loader implements dochtml.DocumentLoader at compile time.
var _ dochtml.DocumentLoader = (*Loader)(nil)

// Loader reads .docx files. It holds no state and is safe for concurrent use.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the body-level paragraphs and tables of the document at path.
func (l *Loader) Load(ctx context.Context, path string, format dochtml.Format) (*dochtml.Model, error) {
	if format != dochtml.FormatDOCX {
		return nil, dochtml.Errorf(dochtml.EUNSUPPORTED, "etree loader cannot read %q documents", format)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, dochtml.WrapError(dochtml.EUNREADABLE, err, "open docx container")
	}
	defer r.Close()

	doc, err := readPart(r, documentPart)
	if err != nil {
		return nil, err
	}

	body := doc.FindElement("./document/body")
	if body == nil {
		return nil, dochtml.Errorf(dochtml.EUNREADABLE, "%s has no document body", documentPart)
	}

	return ParseBody(body), nil
}

func readPart(r *zip.ReadCloser, name string) (*etree.Document, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, dochtml.WrapError(dochtml.EUNREADABLE, err, "open %s", name)
		}
		defer rc.Close()

		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(rc); err != nil {
			return nil, dochtml.WrapError(dochtml.EUNREADABLE, err, "parse %s", name)
		}
		return doc, nil
	}
	return nil, dochtml.Errorf(dochtml.EUNREADABLE, "%s not found in archive", name)
}

// ParseBody converts a w:body element into a model. Only direct children
// are considered, so paragraphs nested in tables appear as cell text only.
func ParseBody(body *etree.Element) *dochtml.Model {
	model := &dochtml.Model{Format: dochtml.FormatDOCX}
	for _, el := range body.ChildElements() {
		switch el.Tag {
		case "p":
			model.Paragraphs = append(model.Paragraphs, parseParagraph(el))
		case "tbl":
			model.Tables = append(model.Tables, parseTable(el))
		}
	}
	return model
}

func parseParagraph(p *etree.Element) dochtml.Paragraph {
	var para dochtml.Paragraph
	collectRuns(p, &para)
	return para
}

// collectRuns appends w:r runs in document order, descending into
// containers that wrap runs without being runs themselves.
func collectRuns(el *etree.Element, para *dochtml.Paragraph) {
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "r":
			para.Runs = append(para.Runs, parseRun(child))
		case "hyperlink", "ins", "smartTag", "fldSimple":
			collectRuns(child, para)
		}
	}
}

func parseRun(r *etree.Element) dochtml.Run {
	var run dochtml.Run
	var sb strings.Builder
	for _, child := range r.ChildElements() {
		switch child.Tag {
		case "rPr":
			run.Bold = toggle(child.SelectElement("b"))
			run.Italic = toggle(child.SelectElement("i"))
		case "t":
			sb.WriteString(child.Text())
		case "tab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		case "noBreakHyphen":
			sb.WriteByte('-')
		}
	}
	run.Text = sb.String()
	return run
}

// toggle reports whether an on/off property element is switched on.
func toggle(el *etree.Element) bool {
	if el == nil {
		return false
	}
	switch strings.ToLower(attr(el, "val")) {
	case "0", "false", "off", "none":
		return false
	}
	return true
}

func parseTable(tbl *etree.Element) dochtml.Table {
	var table dochtml.Table
	for _, tr := range tbl.SelectElements("tr") {
		var row dochtml.Row
		for _, tc := range tr.SelectElements("tc") {
			text := cellText(tc)
			for range cellSpan(tc) {
				row.Cells = append(row.Cells, text)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func cellText(tc *etree.Element) string {
	var parts []string
	for _, p := range tc.SelectElements("p") {
		parts = append(parts, parseParagraph(p).Text())
	}
	return strings.Join(parts, "\n")
}

// cellSpan returns the number of grid columns a cell covers.
func cellSpan(tc *etree.Element) int {
	span := tc.FindElement("./tcPr/gridSpan")
	if span == nil {
		return 1
	}
	n, err := strconv.Atoi(attr(span, "val"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// attr returns an attribute value regardless of its namespace prefix.
func attr(el *etree.Element, key string) string {
	for _, a := range el.Attr {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}
