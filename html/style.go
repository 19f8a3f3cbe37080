package html

// baseStyle is shared by both render modes.
const baseStyle = `body { font-family: Arial, sans-serif; margin: 20px; padding: 10px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 20px; }
td, th { border: 1px solid black; padding: 5px; text-align: left; vertical-align: top; }
`

// ParagraphStyle is the style sheet for word-processing documents.
const ParagraphStyle = baseStyle + `p { margin: 0 0 10px 0; }
.bold { font-weight: bold; }
.italic { font-style: italic; }
`

// PageStyle is the style sheet for PDF documents.
const PageStyle = baseStyle + `h2 { margin: 20px 0 10px 0; }
pre { white-space: pre-wrap; font-family: inherit; }
.checkbox { display: inline-block; width: 16px; height: 16px; border: 1px solid black; margin-right: 5px; }
label { display: inline-block; margin-right: 15px; font-size: 14px; vertical-align: middle; }
`
