package product

import (
	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/shopspring/decimal"
)

// Product represents a purchasable catalog entry. Products are immutable
// once registered.
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return ierr.NewError("product name is required").
			WithHint("Product name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("product price cannot be negative").
			WithHint("Product price must be zero or positive").
			WithReportableDetails(map[string]any{
				"price": p.Price.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if p.ID < 0 {
		return ierr.NewError("product id cannot be negative").
			WithHint("Product id must be a positive integer").
			Mark(ierr.ErrValidation)
	}
	return nil
}
