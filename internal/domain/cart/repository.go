package cart

import "context"

// Repository holds cart instances keyed by cart id. Carts are in-memory
// session state; a cart that has never been seen before is materialized in
// the destroyed state so lifecycle transitions behave uniformly.
type Repository interface {
	GetOrCreate(ctx context.Context, id string) *Cart
	Get(ctx context.Context, id string) (*Cart, error)
}
