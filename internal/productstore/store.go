// Package productstore holds the single in-memory product collection every
// consuming view reads from. Dashboard counts, the recent-products panel and
// the ad generator's picker all share one handle; nothing keeps a parallel
// copy.
package productstore

import (
	"sync"

	"github.com/artisanhub/backend/internal/models"
)

type Store struct {
	mu       sync.RWMutex
	products []models.Product
	subs     []func(models.Product)
}

func New() *Store {
	return &Store{}
}

// Add prepends, so "most recent first" is a property of insertion order.
// Subscribers are notified after the product is visible.
func (s *Store) Add(p models.Product) {
	s.mu.Lock()
	s.products = append([]models.Product{p}, s.products...)
	subs := make([]func(models.Product), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
}

// Products returns a snapshot copy, most recent first.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) TotalViews() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, p := range s.products {
		total += p.Views
	}
	return total
}

// Subscribe registers a callback fired on every Add.
func (s *Store) Subscribe(fn func(models.Product)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
