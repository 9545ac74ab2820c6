package storage

import (
	"context"

	"ledger-service/internal/domain"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedStore serves repeated reads by id from an LRU cache in front of
// another DocumentStore. Writes go through and refresh the cached copy.
type CachedStore struct {
	next  DocumentStore
	cache *lru.Cache[string, *domain.Document]
}

// NewCachedStore wraps next with a cache of size entries.
func NewCachedStore(next DocumentStore, size int) (*CachedStore, error) {
	cache, err := lru.New[string, *domain.Document](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{next: next, cache: cache}, nil
}

func (s *CachedStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	if doc, ok := s.cache.Get(id); ok {
		return cloneDocument(doc), nil
	}
	doc, err := s.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, cloneDocument(doc))
	return doc, nil
}

func (s *CachedStore) GetByCompany(ctx context.Context, companyID string) (*domain.Document, error) {
	return s.next.GetByCompany(ctx, companyID)
}

func (s *CachedStore) Save(ctx context.Context, doc *domain.Document) error {
	if err := s.next.Save(ctx, doc); err != nil {
		if doc != nil {
			s.cache.Remove(doc.ID)
		}
		return err
	}
	s.cache.Add(doc.ID, cloneDocument(doc))
	return nil
}

func (s *CachedStore) Close() error {
	s.cache.Purge()
	return s.next.Close()
}
