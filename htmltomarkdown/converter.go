// Package htmltomarkdown produces Markdown companions of rendered HTML
// documents.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dochtml"
)

// Ensure Converter implements dochtml.MarkdownConverter at compile time.
var _ dochtml.MarkdownConverter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a rendered document into Markdown. Emphasis classes
// become strong/em and checkbox inputs are written back as the "[ ]"
// marker they were detected from.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", dochtml.Errorf(dochtml.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", dochtml.WrapError(dochtml.ECONVERSION, err, "parse HTML")
	}
	doc.Find("span.bold").WrapInnerHtml("<strong></strong>")
	doc.Find("span.italic").WrapInnerHtml("<em></em>")
	doc.Find(`input[type="checkbox"]`).ReplaceWithHtml(dochtml.CheckboxMarker)

	html, err = doc.Html()
	if err != nil {
		return "", dochtml.WrapError(dochtml.ECONVERSION, err, "serialize HTML")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", dochtml.WrapError(dochtml.ECONVERSION, err, "convert to markdown")
	}

	return result, nil
}
