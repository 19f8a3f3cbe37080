package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dochtml"
	"github.com/fwojciec/dochtml/html"
	"github.com/fwojciec/dochtml/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Loader implements dochtml.DocumentLoader at compile time.
var _ dochtml.DocumentLoader = (*pdf.Loader)(nil)

// text is a string drawn at a position on a page.
type text struct {
	x, y float64
	s    string
}

// writePDF writes a PDF with one page per argument, drawn in 12pt Courier.
// The font carries a Widths table so glyph positions are exact.
func writePDF(t *testing.T, pages ...[]text) string {
	t.Helper()

	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding" +
			" /FirstChar 32 /LastChar 126 /Widths [" + strings.TrimSpace(strings.Repeat("600 ", 95)) + "] >>",
	}
	var kids []string
	for _, texts := range pages {
		var content strings.Builder
		for _, tx := range texts {
			fmt.Fprintf(&content, "BT /F1 12 Tf %g %g Td (%s) Tj ET\n", tx.x, tx.y, tx.s)
		}
		page := len(objs) + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", page))
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", page+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		)
	}
	objs[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, obj := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	path := filepath.Join(t.TempDir(), "form.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// formPages is a two-page form: a header repeated on both pages and a
// question grid with checkbox answers on the first.
func formPages() [][]text {
	return [][]text{
		{
			{72, 750, "Header X"},
			{72, 700, "Name"}, {300, 700, "Answer"},
			{72, 680, "Agree"}, {300, 680, "[ ] Yes[ ] No"},
			{72, 660, "Kids"},
			{72, 600, "Signed"},
		},
		{
			{72, 750, "Header X"},
			{72, 700, "Second page body"},
		},
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads pages, text and tables", func(t *testing.T) {
		t.Parallel()

		// Given a two-page form
		path := writePDF(t, formPages()...)

		// When I load it
		m, err := pdf.NewLoader().Load(context.Background(), path, dochtml.FormatPDF)

		// Then every page is numbered in order with its text
		require.NoError(t, err)
		assert.Equal(t, dochtml.FormatPDF, m.Format)
		require.Len(t, m.Pages, 2)
		assert.Equal(t, 1, m.Pages[0].Number)
		assert.Equal(t, 2, m.Pages[1].Number)
		assert.Equal(t, "Header X\nName Answer\nAgree [ ] Yes[ ] No\nKids\nSigned", m.Pages[0].Text)
		assert.Equal(t, "Header X\nSecond page body", m.Pages[1].Text)

		// And the question grid is a table that keeps the unanswered row
		assert.Equal(t, []dochtml.Table{{Rows: []dochtml.Row{
			{Cells: []string{"Name", "Answer"}},
			{Cells: []string{"Agree", "[ ] Yes[ ] No"}},
			{Cells: []string{"Kids", ""}},
		}}}, m.Pages[0].Tables)
		assert.Empty(t, m.Pages[1].Tables)
	})

	t.Run("renders with cross-page dedup and checkboxes", func(t *testing.T) {
		t.Parallel()

		path := writePDF(t, formPages()...)
		m, err := pdf.NewLoader().Load(context.Background(), path, dochtml.FormatPDF)
		require.NoError(t, err)

		out, err := html.NewRenderer().RenderPages("form", dochtml.NormalizePages(m.Pages, dochtml.DefaultLineFilter))
		require.NoError(t, err)

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(doc.Find("pre").Text(), "Header X"))
		assert.Equal(t, 2, doc.Find("h2").Length())
		assert.Equal(t, 2, doc.Find("td label input.checkbox").Length())
		assert.Equal(t, "Second page body", doc.Find("pre").Eq(1).Text())
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		path := writePDF(t, formPages()...)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pdf.NewLoader().Load(ctx, path, dochtml.FormatPDF)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns unreadable for a file that is not a pdf", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "fake.pdf")
		require.NoError(t, os.WriteFile(path, []byte("this is plainly not a portable document"), 0644))

		_, err := pdf.NewLoader().Load(context.Background(), path, dochtml.FormatPDF)

		require.Error(t, err)
		assert.Equal(t, dochtml.EUNREADABLE, dochtml.ErrorCode(err))
	})

	t.Run("returns unreadable for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), dochtml.FormatPDF)

		require.Error(t, err)
		assert.Equal(t, dochtml.EUNREADABLE, dochtml.ErrorCode(err))
	})

	t.Run("rejects other formats", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewLoader(pdf.WithCellGap(2), pdf.WithMinTableRows(3)).Load(context.Background(), "a.docx", dochtml.FormatDOCX)

		require.Error(t, err)
		assert.Equal(t, dochtml.EUNSUPPORTED, dochtml.ErrorCode(err))
	})
}
