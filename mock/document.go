package mock

import (
	"context"

	"github.com/fwojciec/sitemd"
)

var _ sitemd.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of sitemd.DocumentStore.
type DocumentStore struct {
	SaveFn   func(ctx context.Context, doc *sitemd.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DocumentStore) Save(ctx context.Context, doc *sitemd.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *DocumentStore) Commit() error {
	if s.CommitFn == nil {
		return nil
	}
	return s.CommitFn()
}

func (s *DocumentStore) Abort() error {
	if s.AbortFn == nil {
		return nil
	}
	return s.AbortFn()
}

var _ sitemd.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of sitemd.DocumentService.
type DocumentService struct {
	CreateDocumentFn        func(ctx context.Context, doc *sitemd.Document) error
	FindDocumentByIDFn      func(ctx context.Context, id string) (*sitemd.Document, error)
	FindDocumentsFn         func(ctx context.Context, filter sitemd.DocumentFilter) ([]*sitemd.Document, error)
	DeleteDocumentsBySiteFn func(ctx context.Context, siteID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitemd.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sitemd.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter sitemd.DocumentFilter) ([]*sitemd.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocumentsBySite(ctx context.Context, siteID string) error {
	return s.DeleteDocumentsBySiteFn(ctx, siteID)
}
