package voucher

import (
	"strings"

	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/flexcart/flexcart/internal/types"
	"github.com/shopspring/decimal"
)

// Voucher represents a named discount rule. The Type tag selects the
// discount variant; vouchers are immutable once registered and their names
// are case-insensitive, normalized to lowercase.
type Voucher struct {
	Name           string            `json:"name"`
	Type           types.VoucherType `json:"type"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	// MaxDiscount caps the computed discount for percentage vouchers.
	// Unused for fixed vouchers.
	MaxDiscount decimal.Decimal `json:"max_discount"`
}

// NewFixedVoucher creates a voucher that subtracts a flat amount.
func NewFixedVoucher(name string, discountAmount decimal.Decimal) *Voucher {
	return &Voucher{
		Name:           NormalizeName(name),
		Type:           types.VoucherTypeFixed,
		DiscountAmount: discountAmount,
	}
}

// NewPercentageVoucher creates a voucher that subtracts a percentage of the
// price, capped at maxDiscount.
func NewPercentageVoucher(name string, percent, maxDiscount decimal.Decimal) *Voucher {
	return &Voucher{
		Name:           NormalizeName(name),
		Type:           types.VoucherTypePercentage,
		DiscountAmount: percent,
		MaxDiscount:    maxDiscount,
	}
}

// NormalizeName lowercases a voucher name for registration and lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (v *Voucher) Validate() error {
	if v.Name == "" {
		return ierr.NewError("voucher name is required").
			WithHint("Voucher name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if !v.Type.Validate() {
		return ierr.NewError("invalid voucher type").
			WithHint("Voucher type must be either fixed or percentage").
			WithReportableDetails(map[string]any{
				"type": v.Type,
			}).
			Mark(ierr.ErrValidation)
	}
	if v.DiscountAmount.IsNegative() {
		return ierr.NewError("discount amount cannot be negative").
			WithHint("Discount amount must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if v.Type == types.VoucherTypePercentage && v.MaxDiscount.IsNegative() {
		return ierr.NewError("max discount cannot be negative").
			WithHint("Max discount must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CalculateDiscount calculates the discount amount for a given price.
// Percentage discounts are capped at MaxDiscount.
func (v *Voucher) CalculateDiscount(price decimal.Decimal) decimal.Decimal {
	switch v.Type {
	case types.VoucherTypeFixed:
		return v.DiscountAmount
	case types.VoucherTypePercentage:
		discount := price.Mul(v.DiscountAmount).Div(decimal.NewFromInt(100))
		if discount.GreaterThan(v.MaxDiscount) {
			return v.MaxDiscount
		}
		return discount
	default:
		return decimal.Zero
	}
}

// ApplyDiscount applies the discount to a given price and returns the final
// price, floored at zero.
func (v *Voucher) ApplyDiscount(price decimal.Decimal) decimal.Decimal {
	finalPrice := price.Sub(v.CalculateDiscount(price))
	if finalPrice.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return finalPrice
}
