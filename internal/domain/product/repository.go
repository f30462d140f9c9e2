package product

import "context"

// Repository is the read-mostly product catalog consumed by cart engines.
// Registration is expected to happen during setup, before concurrent cart
// traffic begins.
type Repository interface {
	// Add registers a product. A zero ID requests auto-assignment of the
	// smallest unused positive id; an explicit ID that is already taken
	// fails with ErrDuplicateProductID. Returns the assigned id.
	Add(ctx context.Context, p *Product) (int, error)
	Get(ctx context.Context, id int) (*Product, error)
	Exists(ctx context.Context, id int) bool

	// RegisterFreebie sets or overwrites the one-to-one freebie association
	// for a triggering product. Neither id is validated against the catalog.
	RegisterFreebie(ctx context.Context, productID, freebieID int) error
	FreebieExists(ctx context.Context, productID int) bool
	GetFreebieTarget(ctx context.Context, productID int) (int, bool)
}
