package dto

import (
	"github.com/flexcart/flexcart/internal/types"
	"github.com/flexcart/flexcart/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateCartRequest struct {
	// ID is optional; when empty a prefixed unique id is generated.
	ID string `json:"id"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Amount    int `json:"amount"`
}

func (r *AddCartItemRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UpdateCartItemRequest struct {
	Amount int `json:"amount"`
}

type ApplyVoucherRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *ApplyVoucherRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CartLineItemResponse is the aggregated view of one product in the cart,
// combining the paid and freebie ledgers.
type CartLineItemResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Amount      int             `json:"amount"`
	FreeAmount  int             `json:"free_amount"`
	TotalAmount int             `json:"total_amount"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type CartResponse struct {
	ID             string                 `json:"id"`
	Status         types.CartStatus       `json:"status"`
	Items          []CartLineItemResponse `json:"items"`
	Vouchers       []string               `json:"vouchers"`
	TotalPrice     decimal.Decimal        `json:"total_price"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	TotalQuantity  int                    `json:"total_quantity"`
	UniqueProducts int                    `json:"unique_products"`
	Empty          bool                   `json:"empty"`
}
