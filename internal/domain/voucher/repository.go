package voucher

import "context"

// Repository is the voucher catalog. Names are case-insensitive: Save keys
// by lowercased name and overwrites, GetByName lowercases before lookup.
type Repository interface {
	Save(ctx context.Context, v *Voucher) error
	GetByName(ctx context.Context, name string) (*Voucher, error)
}
