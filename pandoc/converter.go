// Package pandoc converts markup formats by running the pandoc executable.
package pandoc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/fwojciec/dochtml"
)

// DefaultBinary is the executable looked up in PATH when none is configured.
const DefaultBinary = "pandoc"

// Ensure Converter implements dochtml.MarkupConverter at compile time.
var _ dochtml.MarkupConverter = (*Converter)(nil)

// Converter runs pandoc once per conversion.
type Converter struct {
	binary string
}

// NewConverter creates a Converter for the given pandoc binary.
// An empty binary selects DefaultBinary.
func NewConverter(binary string) *Converter {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Converter{binary: binary}
}

// ConvertMarkup converts the file at path and returns pandoc's standalone output.
// A failing pandoc run is reported as EUNREADABLE with its stderr.
func (c *Converter) ConvertMarkup(ctx context.Context, path string, from, to dochtml.Format) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, Args(path, from, to)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", dochtml.WrapError(dochtml.EUNREADABLE, err, "pandoc: %s", strings.TrimSpace(stderr.String()))
		}
		return "", dochtml.WrapError(dochtml.ECONVERSION, err, "run %s", c.binary)
	}

	return stdout.String(), nil
}

// Args returns the pandoc command line for converting path.
func Args(path string, from, to dochtml.Format) []string {
	return []string{
		"--from", string(from),
		"--to", string(to),
		"--standalone",
		"--metadata", "pagetitle=" + titleOf(path),
		"--", path,
	}
}

func titleOf(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
