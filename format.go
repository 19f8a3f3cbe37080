package dochtml

import (
	"path/filepath"
	"strings"
)

// Format identifies a document type.
type Format string

// Supported formats.
const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatRTF  Format = "rtf"
	FormatHTML Format = "html"
)

// DetectFormat returns the input format for filename based on its extension.
// Only formats that can be converted to HTML are recognized.
// Returns EUNSUPPORTED for any other extension.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return FormatDOCX, nil
	case ".pdf":
		return FormatPDF, nil
	case ".rtf":
		return FormatRTF, nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported file format %q (supported: %s)", ext, strings.Join(SupportedExtensions(), ", "))
	}
}

// SupportedExtensions returns the extensions DetectFormat recognizes.
func SupportedExtensions() []string {
	return []string{".docx", ".pdf", ".rtf"}
}
