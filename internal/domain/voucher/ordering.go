package voucher

import (
	"sort"

	"github.com/flexcart/flexcart/internal/types"
	"github.com/shopspring/decimal"
)

// SortForApplication returns the vouchers in pricing order: fixed vouchers
// first, largest discount amount first among themselves, then percentage
// vouchers by ascending max discount. The input slice is not modified, so
// the result is the same regardless of the order vouchers were applied in.
func SortForApplication(vouchers []*Voucher) []*Voucher {
	sorted := make([]*Voucher, len(vouchers))
	copy(sorted, vouchers)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Type != b.Type {
			return a.Type == types.VoucherTypeFixed
		}
		if a.Type == types.VoucherTypeFixed {
			return a.DiscountAmount.GreaterThan(b.DiscountAmount)
		}
		return a.MaxDiscount.LessThan(b.MaxDiscount)
	})

	return sorted
}

// ApplyAll runs the full discount pipeline over a base amount, applying each
// voucher in pricing order. Once the running amount reaches zero the
// remaining vouchers are skipped. The result is never negative.
func ApplyAll(base decimal.Decimal, vouchers []*Voucher) decimal.Decimal {
	amount := base
	for _, v := range SortForApplication(vouchers) {
		amount = v.ApplyDiscount(amount)
		if amount.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero
		}
	}
	return amount
}
