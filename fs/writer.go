// Package fs provides file-based output for converted documents.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/dochtml"
)

// OutputPath returns the destination for a converted upload:
// outDir/<name without extension><ext>. Directory components of filename
// are discarded so an upload name cannot escape outDir.
func OutputPath(outDir, filename, ext string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + filename))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == "/" {
		return "", dochtml.Errorf(dochtml.EINVALID, "cannot derive output name from %q", filename)
	}
	return filepath.Join(outDir, stem+ext), nil
}

// Ensure Writer implements dochtml.OutputWriter at compile time.
var _ dochtml.OutputWriter = (*Writer)(nil)

// Writer writes files atomically: data goes to a temporary file in the
// destination directory, which is renamed over the destination on success.
type Writer struct {
	perm os.FileMode
}

// NewWriter creates a new Writer producing files with mode 0644.
func NewWriter() *Writer {
	return &Writer{perm: 0644}
}

// WriteFile replaces path with data. On error the temporary file is removed
// and any existing file at path is left unchanged.
func (w *Writer) WriteFile(ctx context.Context, path string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(w.perm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
