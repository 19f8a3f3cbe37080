package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dochtml"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ dochtml.ConversionService = (*ConversionService)(nil)

// ConversionService implements dochtml.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

const conversionColumns = "id, filename, source_path, output_path, format, status, error, bytes, content_hash, created_at"

// CreateConversion records a conversion attempt. ID and CreatedAt are
// assigned here; Bytes and ContentHash are taken from Content when present.
func (s *ConversionService) CreateConversion(ctx context.Context, c *dochtml.Conversion) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	if c.Content != nil {
		c.Bytes = len(c.Content)
		c.ContentHash = hashContent(c.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (`+conversionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Filename, c.SourcePath, c.OutputPath, string(c.Format), string(c.Status), c.Error,
		c.Bytes, c.ContentHash, c.CreatedAt.Format(time.RFC3339))

	return err
}

// FindConversionByID retrieves a conversion by ID.
func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*dochtml.Conversion, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+conversionColumns+" FROM conversions WHERE id = ?", id)
	c, err := scanConversion(row)
	if err == sql.ErrNoRows {
		return nil, dochtml.Errorf(dochtml.ENOTFOUND, "conversion not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindConversions retrieves conversions matching the filter, newest first.
func (s *ConversionService) FindConversions(ctx context.Context, filter dochtml.ConversionFilter) ([]*dochtml.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + conversionColumns + " FROM conversions WHERE 1=1")

	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []*dochtml.Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}

	return conversions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (*dochtml.Conversion, error) {
	var c dochtml.Conversion
	var createdAt string

	if err := row.Scan(&c.ID, &c.Filename, &c.SourcePath, &c.OutputPath, &c.Format, &c.Status,
		&c.Error, &c.Bytes, &c.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &c, nil
}
