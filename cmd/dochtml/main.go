package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dochtml"
	"github.com/fwojciec/dochtml/convert"
	"github.com/fwojciec/dochtml/etree"
	"github.com/fwojciec/dochtml/fs"
	"github.com/fwojciec/dochtml/html"
	"github.com/fwojciec/dochtml/htmltomarkdown"
	"github.com/fwojciec/dochtml/pandoc"
	"github.com/fwojciec/dochtml/pdf"
	"github.com/fwojciec/dochtml/pdfcpu"
	docslog "github.com/fwojciec/dochtml/slog"
	"github.com/fwojciec/dochtml/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Pandoc executable used for rich-text documents.
	PandocPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ConversionService dochtml.ConversionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		PandocPath: os.Getenv("DOCHTML_PANDOC"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dochtml"),
		kong.Description("Convert Word, PDF and RTF documents to HTML."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dochtml --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCHTML_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ConversionService = sqlite.NewConversionService(m.DB)
	deps.Conversions = m.ConversionService

	if strings.HasPrefix(kongCtx.Command(), "convert") {
		m.wireConverter(deps, &cli.Convert)
	}

	return kongCtx.Run(deps)
}

// wireConverter builds the conversion pipeline for the convert command.
func (m *Main) wireConverter(deps *Dependencies, cmd *ConvertCmd) {
	logger := deps.Logger
	filter := dochtml.DefaultLineFilter.With(cmd.ExcludeContains, cmd.ExcludePrefix)

	d := &convert.Dispatcher{
		Word:     docslog.NewLoggingLoader(etree.NewLoader(), logger),
		PDF:      docslog.NewLoggingLoader(pdf.NewLoader(), logger),
		Markup:   docslog.NewLoggingMarkupConverter(pandoc.NewConverter(m.PandocPath), logger),
		Renderer: html.NewRenderer(),
		Output:   fs.NewWriter(),
		Filter:   &filter,
		OnStatus: func(req dochtml.ConversionRequest, status dochtml.Status) {
			logger.Debug("status", "file", req.Filename, "status", status)
		},
	}
	if cmd.Validate {
		d.Validator = docslog.NewLoggingValidator(pdfcpu.NewValidator(), logger)
	}

	deps.Converter = docslog.NewLoggingConverter(d, logger)
	deps.Output = d.Output
	if cmd.Markdown {
		deps.Markdown = htmltomarkdown.NewConverter()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("DOCHTML_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dochtml.db"
	}
	dir := filepath.Join(home, ".dochtml")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "dochtml.db")
}
