package cart

import (
	"sort"
	"time"

	"github.com/flexcart/flexcart/internal/domain/voucher"
	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/flexcart/flexcart/internal/types"
)

// Cart is the per-session cart state machine. It owns three ledgers: paid
// line-item quantities, derived freebie quantities, and the applied-voucher
// set. The ledgers exist only while the cart is active; they are allocated
// fresh on Activate and released on Deactivate.
//
// The freebie ledger is never written directly by callers. It only changes
// as a side effect of line-item mutations for products with a registered
// freebie association, so that each freebie entry always equals the sum of
// the live contributions of its triggering products.
//
// A Cart instance is owned by a single logical session. It performs no
// internal locking; the caller serializes all calls against one cart.
type Cart struct {
	ID        string
	Status    types.CartStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	items    map[int]int
	freebies map[int]int
	vouchers map[string]*voucher.Voucher
}

// New returns a cart in the destroyed state. Activate must be called before
// any other operation.
func New(id string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        id,
		Status:    types.CartStatusDestroyed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Activate transitions the cart from destroyed to active and initializes
// empty ledgers.
func (c *Cart) Activate() error {
	if c.Status == types.CartStatusActive {
		return ierr.NewError("cart already exists").
			WithHint("Cart has already been created").
			WithReportableDetails(map[string]any{
				"cart_id": c.ID,
			}).
			Mark(ierr.ErrCartAlreadyExists)
	}
	c.Status = types.CartStatusActive
	c.items = make(map[int]int)
	c.freebies = make(map[int]int)
	c.vouchers = make(map[string]*voucher.Voucher)
	c.touch()
	return nil
}

// Deactivate transitions the cart from active to destroyed and discards all
// ledgers.
func (c *Cart) Deactivate() error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	c.Status = types.CartStatusDestroyed
	c.items = nil
	c.freebies = nil
	c.vouchers = nil
	c.touch()
	return nil
}

// EnsureActive fails with ErrCartAlreadyDestroyed unless the cart is active.
// Every operation other than Activate requires an active cart.
func (c *Cart) EnsureActive() error {
	if c.Status != types.CartStatusActive {
		return ierr.NewError("cart already destroyed").
			WithHint("Cart must be created before use").
			WithReportableDetails(map[string]any{
				"cart_id": c.ID,
			}).
			Mark(ierr.ErrCartAlreadyDestroyed)
	}
	return nil
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}

// clampAmount floors negative quantities to zero. A negative amount is a
// no-op, not an error.
func clampAmount(amount int) int {
	if amount < 0 {
		return 0
	}
	return amount
}

// AddItem increments the line-item quantity for a product. When the product
// has a freebie association, the freebie target's quantity is incremented by
// the same clamped amount.
func (c *Cart) AddItem(productID, amount int, freebieID *int) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	amount = clampAmount(amount)
	if amount > 0 {
		c.items[productID] += amount
		if freebieID != nil {
			c.freebies[*freebieID] += amount
		}
	}
	c.touch()
	return nil
}

// SetItemQuantity sets the line-item quantity for a product and adjusts the
// freebie target by the delta, keeping the freebie ledger equal to the sum
// of its triggering products' contributions.
func (c *Cart) SetItemQuantity(productID, amount int, freebieID *int) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	amount = clampAmount(amount)

	prev := c.items[productID]
	if amount == 0 {
		delete(c.items, productID)
	} else {
		c.items[productID] = amount
	}
	if freebieID != nil {
		c.adjustFreebie(*freebieID, amount-prev)
	}
	c.touch()
	return nil
}

// RemoveItem removes a line item entirely. Removing a product with no
// positive quantity fails with ErrProductNotInCart.
func (c *Cart) RemoveItem(productID int, freebieID *int) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	prev := c.items[productID]
	if prev <= 0 {
		return ierr.NewError("product not in cart").
			WithHint("Product has not been added to the cart").
			WithReportableDetails(map[string]any{
				"cart_id":    c.ID,
				"product_id": productID,
			}).
			Mark(ierr.ErrProductNotInCart)
	}
	delete(c.items, productID)
	if freebieID != nil {
		c.adjustFreebie(*freebieID, -prev)
	}
	c.touch()
	return nil
}

// adjustFreebie applies a delta to a freebie ledger entry, flooring at zero
// and pruning empty entries.
func (c *Cart) adjustFreebie(freebieID, delta int) {
	next := c.freebies[freebieID] + delta
	if next <= 0 {
		delete(c.freebies, freebieID)
		return
	}
	c.freebies[freebieID] = next
}

// ApplyVoucher adds a voucher to the applied set. Re-applying an already
// present voucher is a no-op.
func (c *Cart) ApplyVoucher(v *voucher.Voucher) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	name := voucher.NormalizeName(v.Name)
	if _, ok := c.vouchers[name]; ok {
		return nil
	}
	c.vouchers[name] = v
	c.touch()
	return nil
}

// HasVoucher reports whether a voucher name is currently applied.
func (c *Cart) HasVoucher(name string) (bool, error) {
	if err := c.EnsureActive(); err != nil {
		return false, err
	}
	_, ok := c.vouchers[voucher.NormalizeName(name)]
	return ok, nil
}

// RemoveVoucher removes a voucher from the applied set. Removing a voucher
// that is not applied fails with ErrVoucherNotFound.
func (c *Cart) RemoveVoucher(name string) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	normalized := voucher.NormalizeName(name)
	if _, ok := c.vouchers[normalized]; !ok {
		return ierr.NewError("voucher not applied").
			WithHint("Voucher is not applied to the cart").
			WithReportableDetails(map[string]any{
				"cart_id": c.ID,
				"voucher": normalized,
			}).
			Mark(ierr.ErrVoucherNotFound)
	}
	delete(c.vouchers, normalized)
	c.touch()
	return nil
}

// HasProduct reports whether a product has a positive quantity in either
// ledger.
func (c *Cart) HasProduct(productID int) (bool, error) {
	if err := c.EnsureActive(); err != nil {
		return false, err
	}
	return c.items[productID] > 0 || c.freebies[productID] > 0, nil
}

// Items returns a copy of the paid line-item ledger.
func (c *Cart) Items() (map[int]int, error) {
	if err := c.EnsureActive(); err != nil {
		return nil, err
	}
	items := make(map[int]int, len(c.items))
	for id, qty := range c.items {
		items[id] = qty
	}
	return items, nil
}

// Freebies returns a copy of the derived freebie ledger.
func (c *Cart) Freebies() (map[int]int, error) {
	if err := c.EnsureActive(); err != nil {
		return nil, err
	}
	freebies := make(map[int]int, len(c.freebies))
	for id, qty := range c.freebies {
		freebies[id] = qty
	}
	return freebies, nil
}

// Vouchers returns the applied vouchers in no particular order.
func (c *Cart) Vouchers() ([]*voucher.Voucher, error) {
	if err := c.EnsureActive(); err != nil {
		return nil, err
	}
	vouchers := make([]*voucher.Voucher, 0, len(c.vouchers))
	for _, v := range c.vouchers {
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

// VoucherNames returns the applied voucher names sorted alphabetically for
// stable output.
func (c *Cart) VoucherNames() ([]string, error) {
	if err := c.EnsureActive(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(c.vouchers))
	for name := range c.vouchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// TotalQuantity returns the sum of all positive quantities across both
// ledgers, freebies included.
func (c *Cart) TotalQuantity() (int, error) {
	if err := c.EnsureActive(); err != nil {
		return 0, err
	}
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	for _, qty := range c.freebies {
		total += qty
	}
	return total, nil
}

// UniqueProductCount returns the number of distinct product ids with a
// positive quantity in either ledger.
func (c *Cart) UniqueProductCount() (int, error) {
	if err := c.EnsureActive(); err != nil {
		return 0, err
	}
	seen := make(map[int]struct{}, len(c.items)+len(c.freebies))
	for id := range c.items {
		seen[id] = struct{}{}
	}
	for id := range c.freebies {
		seen[id] = struct{}{}
	}
	return len(seen), nil
}

// IsEmpty reports whether no ledger entry is positive.
func (c *Cart) IsEmpty() (bool, error) {
	if err := c.EnsureActive(); err != nil {
		return false, err
	}
	return len(c.items) == 0 && len(c.freebies) == 0, nil
}
