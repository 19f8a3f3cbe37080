// Package html renders document models as self-contained HTML using
// golang.org/x/net/html, which takes care of escaping.
package html

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/fwojciec/dochtml"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Renderer implements dochtml.Renderer at compile time.
var _ dochtml.Renderer = (*Renderer)(nil)

// Renderer renders documents in paragraph mode (DOCX) or page mode (PDF).
// It holds no state and is safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderWord renders every non-empty paragraph followed by every table.
// Table cells hold their raw text; checkbox markers are left as they are.
func (r *Renderer) RenderWord(title string, model *dochtml.Model) ([]byte, error) {
	if model == nil {
		return nil, dochtml.Errorf(dochtml.EINVALID, "nil document model")
	}

	doc, body := newDocument(title, ParagraphStyle)
	for _, p := range model.Paragraphs {
		if p.IsEmpty() {
			continue
		}
		body.AppendChild(paragraphNode(p))
	}
	for _, t := range model.Tables {
		body.AppendChild(tableNode(t, appendText))
	}
	return render(doc)
}

// RenderPages renders each page as a heading, its tables with checkbox
// detection, and its admitted lines in a preformatted block.
func (r *Renderer) RenderPages(title string, pages []dochtml.NormalizedPage) ([]byte, error) {
	doc, body := newDocument(title, PageStyle)
	for _, page := range pages {
		h := element(atom.H2)
		appendText(h, "Page "+strconv.Itoa(page.Number))
		body.AppendChild(h)

		for _, t := range page.Tables {
			body.AppendChild(tableNode(t, appendCheckboxes))
		}

		if len(page.Lines) > 0 {
			pre := element(atom.Pre)
			appendText(pre, strings.Join(page.Lines, "\n"))
			body.AppendChild(pre)
		}
	}
	return render(doc)
}

// cellFunc fills a table cell with content derived from text.
type cellFunc func(td *xhtml.Node, text string)

func appendCheckboxes(td *xhtml.Node, text string) {
	options, ok := dochtml.CheckboxOptions(text)
	if !ok {
		appendText(td, text)
		return
	}
	for _, opt := range options {
		label := element(atom.Label)
		label.AppendChild(element(atom.Input,
			xhtml.Attribute{Key: "type", Val: "checkbox"},
			xhtml.Attribute{Key: "class", Val: "checkbox"},
		))
		appendText(label, " "+opt)
		td.AppendChild(label)
	}
}

func paragraphNode(p dochtml.Paragraph) *xhtml.Node {
	pn := element(atom.P)
	for _, run := range p.Runs {
		var attrs []xhtml.Attribute
		if class := runClass(run); class != "" {
			attrs = append(attrs, xhtml.Attribute{Key: "class", Val: class})
		}
		span := element(atom.Span, attrs...)
		appendText(span, run.Text)
		pn.AppendChild(span)
	}
	return pn
}

func runClass(run dochtml.Run) string {
	var classes []string
	if run.Bold {
		classes = append(classes, "bold")
	}
	if run.Italic {
		classes = append(classes, "italic")
	}
	return strings.Join(classes, " ")
}

func tableNode(t dochtml.Table, fill cellFunc) *xhtml.Node {
	table := element(atom.Table)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, cell := range row.Cells {
			td := element(atom.Td)
			fill(td, cell)
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}
	return table
}

// newDocument builds the document skeleton and returns it with its body.
func newDocument(title, style string) (doc, body *xhtml.Node) {
	doc = &xhtml.Node{Type: xhtml.DocumentNode}
	doc.AppendChild(&xhtml.Node{Type: xhtml.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, xhtml.Attribute{Key: "charset", Val: "utf-8"}))
	t := element(atom.Title)
	appendText(t, title)
	head.AppendChild(t)
	s := element(atom.Style)
	appendText(s, style)
	head.AppendChild(s)

	body = element(atom.Body)
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	return doc, body
}

func element(a atom.Atom, attrs ...xhtml.Attribute) *xhtml.Node {
	return &xhtml.Node{
		Type:     xhtml.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func appendText(n *xhtml.Node, text string) {
	if text == "" {
		return
	}
	n.AppendChild(&xhtml.Node{Type: xhtml.TextNode, Data: text})
}

func render(doc *xhtml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := xhtml.Render(&buf, doc); err != nil {
		return nil, dochtml.WrapError(dochtml.ECONVERSION, err, "render html")
	}
	return buf.Bytes(), nil
}
