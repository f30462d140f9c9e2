package repository

import (
	"context"
	"sync"

	"github.com/flexcart/flexcart/internal/domain/cart"
	ierr "github.com/flexcart/flexcart/internal/errors"
)

// InMemoryCartStore holds cart instances keyed by cart id. The store only
// guards the registry map; callers serialize operations against a single
// cart instance.
type InMemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{
		carts: make(map[string]*cart.Cart),
	}
}

// NewCartRepository returns the cart store as its domain interface.
func NewCartRepository() cart.Repository {
	return NewInMemoryCartStore()
}

func (s *InMemoryCartStore) GetOrCreate(ctx context.Context, id string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, exists := s.carts[id]; exists {
		return c
	}
	c := cart.New(id)
	s.carts[id] = c
	return c
}

func (s *InMemoryCartStore) Get(ctx context.Context, id string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, exists := s.carts[id]; exists {
		return c, nil
	}
	return nil, ierr.NewError("cart not found").
		WithHint("Cart must be created before use").
		WithReportableDetails(map[string]any{
			"cart_id": id,
		}).
		Mark(ierr.ErrCartAlreadyDestroyed)
}
