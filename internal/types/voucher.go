package types

// VoucherType represents the type of voucher discount (fixed or percentage)
type VoucherType string

const (
	// VoucherTypeFixed represents a flat amount subtracted from the cart total
	VoucherTypeFixed VoucherType = "fixed"
	// VoucherTypePercentage represents a percentage discount capped at a maximum amount
	VoucherTypePercentage VoucherType = "percentage"
)

func (t VoucherType) String() string {
	return string(t)
}

func (t VoucherType) Validate() bool {
	switch t {
	case VoucherTypeFixed, VoucherTypePercentage:
		return true
	}
	return false
}
