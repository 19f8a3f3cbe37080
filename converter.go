package dochtml

import "context"

// MarkupConverter converts a file between markup formats with an external tool.
type MarkupConverter interface {
	// ConvertMarkup reads the file at path as from and returns it rendered as to.
	ConvertMarkup(ctx context.Context, path string, from, to Format) (string, error)
}

// MarkdownConverter converts HTML to Markdown.
type MarkdownConverter interface {
	// Convert transforms an HTML document into Markdown.
	Convert(html string) (string, error)
}

// Renderer assembles complete HTML documents from normalized content.
type Renderer interface {
	// RenderWord renders paragraphs and tables of a word-processing model.
	RenderWord(title string, model *Model) ([]byte, error)

	// RenderPages renders normalized PDF pages with page headings,
	// checkbox-aware tables and preformatted text.
	RenderPages(title string, pages []NormalizedPage) ([]byte, error)
}

// OutputWriter writes converted documents to disk.
type OutputWriter interface {
	// WriteFile replaces the file at path with data atomically. On error the
	// file at path is left as it was.
	WriteFile(ctx context.Context, path string, data []byte) error
}
