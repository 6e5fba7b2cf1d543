package catalog

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrNotFound = errors.New("product not found")

// Store keeps the catalog in memory. Listing preserves insertion order so
// the storefront renders products in a stable sequence.
type Store struct {
	mu       sync.RWMutex
	products map[string]Product
	order    []string
}

func NewStore() *Store {
	return &Store{
		products: make(map[string]Product),
	}
}

// List returns the products in insertion order, optionally narrowed by
// category and a case-insensitive name search.
func (s *Store) List(category string, search string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(search)

	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.products[id]
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) Fetch(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) Create(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = p
	s.order = append(s.order, p.ID)
}

// Update applies the non-nil fields of up to the stored product.
func (s *Store) Update(id string, up ProductUp) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}

	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.Category != nil {
		p.Category = *up.Category
	}
	if up.Description != nil {
		p.Description = *up.Description
	}
	if up.ImageURL != nil {
		p.ImageURL = *up.ImageURL
	}
	if up.Price != nil {
		p.Price = *up.Price
	}
	if up.InStock != nil {
		p.InStock = *up.InStock
	}
	p.UpdatedAt = time.Now().UTC()

	s.products[id] = p
	return p, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
