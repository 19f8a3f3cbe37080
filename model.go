package dochtml

import (
	"context"
	"strings"
)

// Run is the smallest styled unit of text in a word-processing document.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Paragraph is an ordered sequence of runs.
type Paragraph struct {
	Runs []Run
}

// IsEmpty reports whether the paragraph has no visible text.
func (p Paragraph) IsEmpty() bool {
	for _, r := range p.Runs {
		if strings.TrimSpace(r.Text) != "" {
			return false
		}
	}
	return true
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Row is an ordered sequence of cell texts.
// Missing cells are represented by the empty string, never omitted.
type Row struct {
	Cells []string
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []Row
}

// Page is a single PDF page.
type Page struct {
	// Number is the 1-based position of the page in the document.
	Number int
	Tables []Table
	// Text is the extracted plain text with embedded line breaks.
	Text string
}

// Model is the structural representation of a loaded document.
// Word-processing documents fill Paragraphs and Tables; PDFs fill Pages.
type Model struct {
	Format     Format
	Paragraphs []Paragraph
	Tables     []Table
	Pages      []Page
}

// DocumentLoader loads a document into its structural model.
type DocumentLoader interface {
	// Load parses the file at path as the given format.
	// Returns EUNREADABLE if the file cannot be parsed (corrupt, encrypted
	// or malformed). No partial model is returned on error.
	Load(ctx context.Context, path string, format Format) (*Model, error)
}

// Validator checks that a file can be parsed before it is loaded.
type Validator interface {
	// Validate returns EUNREADABLE if the file at path is corrupt or encrypted.
	Validate(ctx context.Context, path string) error
}
