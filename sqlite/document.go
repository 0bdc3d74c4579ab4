package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitemd"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitemd.DocumentService = (*DocumentService)(nil)

// DocumentService implements sitemd.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitemd.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.ConvertedAt.IsZero() {
		doc.ConvertedAt = time.Now().UTC()
	}
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, site_id, source_path, output_path, title, content, content_hash, position, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SiteID, doc.SourcePath, doc.OutputPath, doc.Title, doc.Content,
		doc.ContentHash, doc.Position, doc.ConvertedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sitemd.Document, error) {
	var doc sitemd.Document
	var convertedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, site_id, source_path, output_path, title, content, content_hash, position, converted_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.SiteID, &doc.SourcePath, &doc.OutputPath, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.Position, &convertedAt)

	if err == sql.ErrNoRows {
		return nil, sitemd.Errorf(sitemd.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.ConvertedAt, err = parseRFC3339(convertedAt, "converted_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter sitemd.DocumentFilter) ([]*sitemd.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site_id, source_path, output_path, title, content, content_hash, position, converted_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SiteID != nil {
		query.WriteString(" AND site_id = ?")
		args = append(args, *filter.SiteID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	switch filter.SortBy {
	case sitemd.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY converted_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*sitemd.Document
	for rows.Next() {
		var doc sitemd.Document
		var convertedAt string

		if err := rows.Scan(&doc.ID, &doc.SiteID, &doc.SourcePath, &doc.OutputPath, &doc.Title,
			&doc.Content, &doc.ContentHash, &doc.Position, &convertedAt); err != nil {
			return nil, err
		}

		if doc.ConvertedAt, err = parseRFC3339(convertedAt, "converted_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocumentsBySite removes all documents for a site.
func (s *DocumentService) DeleteDocumentsBySite(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE site_id = ?", siteID)
	return err
}
