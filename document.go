package sitemd

import (
	"context"
	"time"
)

// Document represents one converted page.
type Document struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"siteId"`
	SourcePath  string    `json:"sourcePath"`
	OutputPath  string    `json:"outputPath"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	ConvertedAt time.Time `json:"convertedAt"`

	// Frontmatter holds additional per-page fields extracted via the
	// config's frontmatter selectors. Written to the output file's
	// frontmatter; not persisted in the catalog.
	Frontmatter map[string]string `json:"frontmatter,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SiteID == "" {
		return Errorf(EINVALID, "document site ID required")
	}
	if d.SourcePath == "" {
		return Errorf(EINVALID, "document source path required")
	}
	return nil
}

// DocumentStore persists converted pages as markdown files with atomic
// semantics. Save writes to a temporary location; Commit makes changes
// permanent; Abort discards pending changes.
type DocumentStore interface {
	Save(ctx context.Context, doc *Document) error
	Commit() error
	Abort() error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByConvertedAt SortOrder = "converted_at"
	SortByPosition    SortOrder = "position"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID         *string `json:"id"`
	SiteID     *string `json:"siteId"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// DocumentService represents a catalog of converted documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocumentsBySite removes all documents for a site.
	DeleteDocumentsBySite(ctx context.Context, siteID string) error
}
