package dto

import (
	"github.com/flexcart/flexcart/internal/domain/voucher"
	"github.com/flexcart/flexcart/internal/types"
	"github.com/flexcart/flexcart/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateVoucherRequest struct {
	Name           string            `json:"name" validate:"required"`
	Type           types.VoucherType `json:"type" validate:"required,oneof=fixed percentage"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	// MaxDiscount caps the computed discount for percentage vouchers.
	MaxDiscount decimal.Decimal `json:"max_discount"`
}

func (r *CreateVoucherRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.ToVoucher().Validate()
}

func (r *CreateVoucherRequest) ToVoucher() *voucher.Voucher {
	if r.Type == types.VoucherTypePercentage {
		return voucher.NewPercentageVoucher(r.Name, r.DiscountAmount, r.MaxDiscount)
	}
	return voucher.NewFixedVoucher(r.Name, r.DiscountAmount)
}

type VoucherResponse struct {
	Name           string            `json:"name"`
	Type           types.VoucherType `json:"type"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	MaxDiscount    decimal.Decimal   `json:"max_discount,omitempty"`
}

func NewVoucherResponse(v *voucher.Voucher) *VoucherResponse {
	return &VoucherResponse{
		Name:           v.Name,
		Type:           v.Type,
		DiscountAmount: v.DiscountAmount,
		MaxDiscount:    v.MaxDiscount,
	}
}
