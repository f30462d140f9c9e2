package repository

import (
	"context"
	"sync"

	"github.com/flexcart/flexcart/internal/domain/voucher"
	ierr "github.com/flexcart/flexcart/internal/errors"
)

// InMemoryVoucherStore is the in-memory voucher catalog, keyed by lowercased
// voucher name.
type InMemoryVoucherStore struct {
	mu       sync.RWMutex
	vouchers map[string]*voucher.Voucher
}

func NewInMemoryVoucherStore() *InMemoryVoucherStore {
	return &InMemoryVoucherStore{
		vouchers: make(map[string]*voucher.Voucher),
	}
}

// NewVoucherRepository returns the voucher catalog as its domain interface.
func NewVoucherRepository() voucher.Repository {
	return NewInMemoryVoucherStore()
}

func (s *InMemoryVoucherStore) Save(ctx context.Context, v *voucher.Voucher) error {
	if v == nil {
		return ierr.NewError("voucher cannot be nil").
			WithHint("Voucher cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := v.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-registering a name overwrites the prior voucher.
	s.vouchers[voucher.NormalizeName(v.Name)] = v
	return nil
}

func (s *InMemoryVoucherStore) GetByName(ctx context.Context, name string) (*voucher.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, exists := s.vouchers[voucher.NormalizeName(name)]; exists {
		return v, nil
	}
	return nil, ierr.NewError("voucher not found").
		WithHint("Voucher is not registered").
		WithReportableDetails(map[string]any{
			"voucher": voucher.NormalizeName(name),
		}).
		Mark(ierr.ErrVoucherNotFound)
}
