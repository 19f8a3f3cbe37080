package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/dochtml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Conversions dochtml.ConversionService
	Converter   dochtml.DocumentConverter
	Output      dochtml.OutputWriter
	Markdown    dochtml.MarkdownConverter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every pipeline step"`

	Convert ConvertCmd `cmd:"" help:"Convert documents to HTML"`
	History HistoryCmd `cmd:"" help:"List recorded conversions"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Files           []string `arg:"" type:"existingfile" help:"Documents to convert (.docx, .pdf, .rtf)"`
	OutDir          string   `short:"o" default:"html_files" help:"Directory for generated HTML"`
	Concurrency     int      `short:"c" default:"4" help:"Concurrent conversion limit"`
	Markdown        bool     `short:"m" help:"Also write a Markdown copy next to each HTML file"`
	ExcludeContains []string `name:"exclude-contains" help:"Drop PDF lines containing this text (repeatable)"`
	ExcludePrefix   []string `name:"exclude-prefix" help:"Drop PDF lines starting with this text (repeatable)"`
	Validate        bool     `help:"Validate PDFs with pdfcpu before extracting text"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID     string `arg:"" optional:"" help:"Show a single conversion"`
	Status string `help:"Only show conversions with this status (converted, failed)"`
	Format string `help:"Only show conversions of this format (docx, pdf, rtf)"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of conversions to list"`
}
