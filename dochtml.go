// Package dochtml converts office documents (DOCX, PDF, RTF) into
// self-contained HTML. It keeps paragraphs, emphasis, tables and checkbox
// markers, and drops repeated page headers, footers and disclaimer lines.
//
// This package contains domain types, interfaces and the pure conversion
// rules. Implementations live in subdirectories named after their primary
// dependency (e.g., etree/, pdf/, sqlite/).
package dochtml
