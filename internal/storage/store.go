// Package storage persists company sheet documents and archives raw uploads.
package storage

import (
	"context"
	"strings"

	"ledger-service/internal/domain"

	"github.com/google/uuid"
)

// DocumentStore persists one document per company.
type DocumentStore interface {
	// Get returns the document with the given id or domain.ErrDocumentNotFound.
	Get(ctx context.Context, id string) (*domain.Document, error)
	// GetByCompany returns the company's document or domain.ErrDocumentNotFound.
	GetByCompany(ctx context.Context, companyID string) (*domain.Document, error)
	// Save inserts or replaces doc, keyed by its ID.
	Save(ctx context.Context, doc *domain.Document) error
	Close() error
}

// NewDocumentID returns a fresh document identifier.
func NewDocumentID() string {
	return uuid.NewString()
}

// ValidDocumentID reports whether id has the shape produced by NewDocumentID.
func ValidDocumentID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

func cloneDocument(doc *domain.Document) *domain.Document {
	if doc == nil {
		return nil
	}
	out := *doc
	out.Sheets = cloneSheets(doc.Sheets)
	return &out
}

func cloneSheets(sheets domain.SheetCollection) domain.SheetCollection {
	if sheets == nil {
		return nil
	}
	out := make(domain.SheetCollection, len(sheets))
	for i, s := range sheets {
		out[i] = s
		out[i].Cells = append([]domain.Cell(nil), s.Cells...)
	}
	return out
}
