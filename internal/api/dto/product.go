package dto

import (
	"github.com/flexcart/flexcart/internal/domain/product"
	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/flexcart/flexcart/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	// ID is optional; zero requests auto-assignment of the smallest unused
	// positive id.
	ID    int             `json:"id" validate:"omitempty,gte=0"`
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return ierr.NewError("product price cannot be negative").
			WithHint("Product price must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateProductRequest) ToProduct() *product.Product {
	return &product.Product{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
	}
}

type RegisterFreebieRequest struct {
	FreebieProductID int `json:"freebie_product_id" validate:"required"`
}

func (r *RegisterFreebieRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ProductResponse struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	FreebieProductID *int            `json:"freebie_product_id,omitempty"`
}

func NewProductResponse(p *product.Product, freebieID *int) *ProductResponse {
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		FreebieProductID: freebieID,
	}
}
