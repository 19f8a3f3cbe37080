package mock

import (
	"context"

	"github.com/fwojciec/dochtml"
)

var _ dochtml.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of dochtml.ConversionService.
type ConversionService struct {
	CreateConversionFn   func(ctx context.Context, c *dochtml.Conversion) error
	FindConversionByIDFn func(ctx context.Context, id string) (*dochtml.Conversion, error)
	FindConversionsFn    func(ctx context.Context, filter dochtml.ConversionFilter) ([]*dochtml.Conversion, error)
}

func (s *ConversionService) CreateConversion(ctx context.Context, c *dochtml.Conversion) error {
	return s.CreateConversionFn(ctx, c)
}

func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*dochtml.Conversion, error) {
	return s.FindConversionByIDFn(ctx, id)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter dochtml.ConversionFilter) ([]*dochtml.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}
