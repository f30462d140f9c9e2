package repository

import (
	"context"
	"sync"

	"github.com/flexcart/flexcart/internal/domain/product"
	ierr "github.com/flexcart/flexcart/internal/errors"
)

// InMemoryProductStore is the in-memory product catalog. Reads may happen
// concurrently from many carts; registration is expected during seeding.
type InMemoryProductStore struct {
	mu            sync.RWMutex
	products      map[int]*product.Product
	freebies      map[int]int
	autoIncrement int
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		products:      make(map[int]*product.Product),
		freebies:      make(map[int]int),
		autoIncrement: 1,
	}
}

// NewProductRepository returns the product catalog as its domain interface.
func NewProductRepository() product.Repository {
	return NewInMemoryProductStore()
}

func (s *InMemoryProductStore) Add(ctx context.Context, p *product.Product) (int, error) {
	if p == nil {
		return 0, ierr.NewError("product cannot be nil").
			WithHint("Product cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID != 0 {
		if _, exists := s.products[p.ID]; exists {
			return 0, ierr.NewError("product id already registered").
				WithHint("A product with this id already exists").
				WithReportableDetails(map[string]any{
					"product_id": p.ID,
				}).
				Mark(ierr.ErrDuplicateProductID)
		}
		stored := *p
		s.products[p.ID] = &stored
		return p.ID, nil
	}

	// Explicit ids may have taken values ahead of the counter, so scan
	// upward from the last assigned value until a free id is found.
	for {
		if _, exists := s.products[s.autoIncrement]; !exists {
			break
		}
		s.autoIncrement++
	}

	stored := *p
	stored.ID = s.autoIncrement
	s.products[stored.ID] = &stored
	return stored.ID, nil
}

func (s *InMemoryProductStore) Get(ctx context.Context, id int) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, exists := s.products[id]; exists {
		return p, nil
	}
	return nil, ierr.NewError("product not found").
		WithHint("Product does not exist in the catalog").
		WithReportableDetails(map[string]any{
			"product_id": id,
		}).
		Mark(ierr.ErrProductNotFound)
}

func (s *InMemoryProductStore) Exists(ctx context.Context, id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.products[id]
	return exists
}

func (s *InMemoryProductStore) RegisterFreebie(ctx context.Context, productID, freebieID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Associations may be registered before either product exists.
	s.freebies[productID] = freebieID
	return nil
}

func (s *InMemoryProductStore) FreebieExists(ctx context.Context, productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.freebies[productID]
	return exists
}

func (s *InMemoryProductStore) GetFreebieTarget(ctx context.Context, productID int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, exists := s.freebies[productID]
	return target, exists
}
