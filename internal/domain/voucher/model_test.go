package voucher

import (
	"testing"

	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/flexcart/flexcart/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFixedVoucherApplyDiscount(t *testing.T) {
	v := NewFixedVoucher("oct10", decimal.NewFromInt(10))

	assert.True(t, decimal.NewFromInt(90).Equal(v.ApplyDiscount(decimal.NewFromInt(100))))
	assert.True(t, decimal.Zero.Equal(v.ApplyDiscount(decimal.NewFromInt(10))))

	// Never negative, even when the discount exceeds the price.
	assert.True(t, decimal.Zero.Equal(v.ApplyDiscount(decimal.NewFromInt(5))))
}

func TestPercentageVoucherApplyDiscount(t *testing.T) {
	v := NewPercentageVoucher("free", decimal.NewFromInt(20), decimal.NewFromInt(20))

	// 20% of 20 is 4, below the cap of 20.
	assert.True(t, decimal.NewFromInt(16).Equal(v.ApplyDiscount(decimal.NewFromInt(20))))

	// 20% of 1000 is 200, capped at 20.
	assert.True(t, decimal.NewFromInt(980).Equal(v.ApplyDiscount(decimal.NewFromInt(1000))))
}

func TestPercentageVoucherFullDiscount(t *testing.T) {
	v := NewPercentageVoucher("free100", decimal.NewFromInt(100), decimal.NewFromInt(100))

	assert.True(t, decimal.Zero.Equal(v.ApplyDiscount(decimal.NewFromInt(100))))
	assert.True(t, decimal.NewFromInt(100).Equal(v.ApplyDiscount(decimal.NewFromInt(200))))
}

func TestZeroCapPercentageVoucherIsNoop(t *testing.T) {
	v := NewPercentageVoucher("nodiscount", decimal.NewFromInt(5), decimal.Zero)

	assert.True(t, decimal.NewFromInt(100).Equal(v.ApplyDiscount(decimal.NewFromInt(100))))
}

func TestVoucherNameNormalization(t *testing.T) {
	v := NewFixedVoucher("  OCT10 ", decimal.NewFromInt(10))
	assert.Equal(t, "oct10", v.Name)

	assert.Equal(t, "free50", NormalizeName("FrEe50"))
}

func TestVoucherValidate(t *testing.T) {
	assert.NoError(t, NewFixedVoucher("ok", decimal.NewFromInt(1)).Validate())

	err := NewFixedVoucher("", decimal.NewFromInt(1)).Validate()
	assert.True(t, ierr.IsValidation(err))

	err = NewFixedVoucher("neg", decimal.NewFromInt(-1)).Validate()
	assert.True(t, ierr.IsValidation(err))

	err = NewPercentageVoucher("cap", decimal.NewFromInt(10), decimal.NewFromInt(-1)).Validate()
	assert.True(t, ierr.IsValidation(err))

	err = (&Voucher{Name: "bad", Type: types.VoucherType("other")}).Validate()
	assert.True(t, ierr.IsValidation(err))
}
