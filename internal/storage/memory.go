package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ledger-service/internal/domain"
)

// MemoryStore keeps documents in process memory. Stored and returned
// documents are copies.
type MemoryStore struct {
	mu        sync.RWMutex
	byID      map[string]*domain.Document
	byCompany map[string]string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:      make(map[string]*domain.Document),
		byCompany: make(map[string]string),
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

func (s *MemoryStore) GetByCompany(_ context.Context, companyID string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byCompany[strings.TrimSpace(companyID)]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDocument(s.byID[id]), nil
}

func (s *MemoryStore) Save(_ context.Context, doc *domain.Document) error {
	if doc == nil || strings.TrimSpace(doc.ID) == "" {
		return fmt.Errorf("documento sem identificador")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if other, ok := s.byCompany[doc.CompanyID]; ok && other != doc.ID {
		return fmt.Errorf("empresa %s já possui o documento %s", doc.CompanyID, other)
	}
	if prev, ok := s.byID[doc.ID]; ok && prev.CompanyID != doc.CompanyID {
		delete(s.byCompany, prev.CompanyID)
	}
	s.byID[doc.ID] = cloneDocument(doc)
	s.byCompany[doc.CompanyID] = doc.ID
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
