package voucher

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSortForApplication(t *testing.T) {
	fixed10 := NewFixedVoucher("fixed10", decimal.NewFromInt(10))
	fixed100 := NewFixedVoucher("fixed100", decimal.NewFromInt(100))
	pct20cap20 := NewPercentageVoucher("pct20", decimal.NewFromInt(20), decimal.NewFromInt(20))
	pct50cap1000 := NewPercentageVoucher("pct50", decimal.NewFromInt(50), decimal.NewFromInt(1000))

	sorted := SortForApplication([]*Voucher{pct50cap1000, fixed10, pct20cap20, fixed100})

	names := make([]string, len(sorted))
	for i, v := range sorted {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"fixed100", "fixed10", "pct20", "pct50"}, names)
}

func TestApplyAllOrderIndependence(t *testing.T) {
	a := NewFixedVoucher("a", decimal.NewFromInt(10))
	b := NewFixedVoucher("b", decimal.NewFromInt(100))
	c := NewPercentageVoucher("c", decimal.NewFromInt(20), decimal.NewFromInt(20))
	d := NewPercentageVoucher("d", decimal.NewFromInt(50), decimal.NewFromInt(1000))

	base := decimal.NewFromInt(1000)
	permutations := [][]*Voucher{
		{a, b, c, d},
		{d, c, b, a},
		{c, a, d, b},
		{b, d, a, c},
	}

	want := ApplyAll(base, permutations[0])
	for _, vouchers := range permutations[1:] {
		assert.True(t, want.Equal(ApplyAll(base, vouchers)))
	}

	// fixed100 then fixed10 leaves 890, cap 20 leaves 870, 50% leaves 435.
	assert.True(t, decimal.NewFromInt(435).Equal(want))
}

func TestApplyAllShortCircuitsAtZero(t *testing.T) {
	massive := NewFixedVoucher("massive", decimal.NewFromInt(1000))
	pct := NewPercentageVoucher("pct", decimal.NewFromInt(50), decimal.NewFromInt(1000))

	got := ApplyAll(decimal.NewFromInt(100), []*Voucher{pct, massive})
	assert.True(t, decimal.Zero.Equal(got))
}

func TestApplyAllWithoutVouchers(t *testing.T) {
	base := decimal.NewFromInt(42)
	assert.True(t, base.Equal(ApplyAll(base, nil)))
}
