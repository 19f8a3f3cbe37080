package dochtml

import (
	"context"
	"time"
)

// Status is the state of a conversion request.
type Status string

// Conversion states. Received moves to Dispatched once the format is
// recognized; Dispatched ends in Converted or Failed.
const (
	StatusReceived   Status = "received"
	StatusDispatched Status = "dispatched"
	StatusConverted  Status = "converted"
	StatusFailed     Status = "failed"
)

// ConversionRequest asks for one document to be converted.
type ConversionRequest struct {
	// SourcePath is the local path of the uploaded file.
	SourcePath string
	// Filename is the original name; only its extension is used.
	Filename string
	// OutputPath is where the HTML document is written.
	OutputPath string
}

// Validate returns an error if the request contains invalid fields.
func (r *ConversionRequest) Validate() error {
	if r.SourcePath == "" {
		return Errorf(EINVALID, "source path required")
	}
	if r.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	return nil
}

// ConversionResult describes a finished conversion.
type ConversionResult struct {
	Request  ConversionRequest
	Format   Format
	Status   Status
	HTML     []byte
	Duration time.Duration
}

// DocumentConverter converts one document to HTML.
type DocumentConverter interface {
	// Convert runs the pipeline matching the request's file extension.
	// Returns EUNSUPPORTED for unknown extensions, EUNREADABLE when the
	// document cannot be parsed and ECONVERSION for any other failure.
	Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error)
}

// Conversion is a recorded conversion attempt.
type Conversion struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	SourcePath  string    `json:"sourcePath"`
	OutputPath  string    `json:"outputPath"`
	Format      Format    `json:"format"`
	Status      Status    `json:"status"`
	Error       string    `json:"error,omitempty"`
	Bytes       int       `json:"bytes"`
	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`

	// Content is the rendered output used to compute ContentHash. Not stored.
	Content []byte `json:"-"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.Filename == "" {
		return Errorf(EINVALID, "conversion filename required")
	}
	switch c.Status {
	case StatusConverted, StatusFailed:
	default:
		return Errorf(EINVALID, "conversion status must be %q or %q", StatusConverted, StatusFailed)
	}
	return nil
}

// ConversionService represents a service for recording conversions.
type ConversionService interface {
	// CreateConversion records a conversion attempt.
	CreateConversion(ctx context.Context, c *Conversion) error

	// FindConversionByID retrieves a conversion by ID.
	// Returns ENOTFOUND if the conversion does not exist.
	FindConversionByID(ctx context.Context, id string) (*Conversion, error)

	// FindConversions retrieves conversions matching the filter, newest first.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	Status *Status `json:"status"`
	Format *Format `json:"format"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
