package types

// CartStatus represents the lifecycle state of a cart
type CartStatus string

const (
	// CartStatusActive represents a cart that has been created and accepts operations
	CartStatusActive CartStatus = "active"
	// CartStatusDestroyed represents a cart that has not been created yet or has been destroyed
	CartStatusDestroyed CartStatus = "destroyed"
)

func (s CartStatus) String() string {
	return string(s)
}
