package mock

import (
	"context"

	"github.com/fwojciec/dochtml"
)

var _ dochtml.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of dochtml.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, path string, format dochtml.Format) (*dochtml.Model, error)
}

func (l *DocumentLoader) Load(ctx context.Context, path string, format dochtml.Format) (*dochtml.Model, error) {
	return l.LoadFn(ctx, path, format)
}

var _ dochtml.Validator = (*Validator)(nil)

// Validator is a mock implementation of dochtml.Validator.
type Validator struct {
	ValidateFn func(ctx context.Context, path string) error
}

func (v *Validator) Validate(ctx context.Context, path string) error {
	return v.ValidateFn(ctx, path)
}
