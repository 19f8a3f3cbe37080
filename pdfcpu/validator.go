// Package pdfcpu checks PDF files with github.com/pdfcpu/pdfcpu before they
// are handed to a loader, so corrupt and encrypted files fail early with a
// precise cause.
package pdfcpu

import (
	"context"
	"sync"

	"github.com/fwojciec/dochtml"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// Ensure Validator implements dochtml.Validator at compile time.
var _ dochtml.Validator = (*Validator)(nil)

// Validator validates PDF structure in relaxed mode.
type Validator struct{}

// NewValidator creates a new Validator.
// pdfcpu's on-disk configuration directory is disabled.
func NewValidator() *Validator {
	disableConfigDir.Do(api.DisableConfigDir)
	return &Validator{}
}

// Validate returns EUNREADABLE if pdfcpu cannot read the file at path.
func (v *Validator) Validate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return dochtml.WrapError(dochtml.EUNREADABLE, err, "invalid pdf")
	}
	return nil
}
