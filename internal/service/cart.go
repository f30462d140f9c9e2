package service

import (
	"context"
	"sort"

	"github.com/flexcart/flexcart/internal/api/dto"
	"github.com/flexcart/flexcart/internal/domain/cart"
	"github.com/flexcart/flexcart/internal/domain/product"
	"github.com/flexcart/flexcart/internal/domain/voucher"
	"github.com/flexcart/flexcart/internal/logger"
	"github.com/flexcart/flexcart/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CartService drives the per-session cart engine. One cart is exclusively
// owned by one logical session; the catalogs are shared read-mostly
// resources the engine holds non-owning references to.
type CartService interface {
	CreateCart(ctx context.Context, req dto.CreateCartRequest) (*dto.CartResponse, error)
	DestroyCart(ctx context.Context, cartID string) error

	AddProductToCart(ctx context.Context, cartID string, req dto.AddCartItemRequest) (*dto.CartResponse, error)
	UpdateProduct(ctx context.Context, cartID string, productID int, req dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	RemoveProductFromCart(ctx context.Context, cartID string, productID int) (*dto.CartResponse, error)
	ApplyVoucher(ctx context.Context, cartID string, req dto.ApplyVoucherRequest) (*dto.CartResponse, error)
	RemoveVoucher(ctx context.Context, cartID string, name string) (*dto.CartResponse, error)

	GetCart(ctx context.Context, cartID string) (*dto.CartResponse, error)
	ListProducts(ctx context.Context, cartID string) ([]dto.CartLineItemResponse, error)
	ListVoucherNames(ctx context.Context, cartID string) ([]string, error)
	GetTotalPrice(ctx context.Context, cartID string) (decimal.Decimal, error)
	GetTotalAmount(ctx context.Context, cartID string) (decimal.Decimal, error)
	GetTotalQuantity(ctx context.Context, cartID string) (int, error)
	GetCountUniqueProducts(ctx context.Context, cartID string) (int, error)
	IsCartEmpty(ctx context.Context, cartID string) (bool, error)
	IsProductInCart(ctx context.Context, cartID string, productID int) (bool, error)
}

type cartService struct {
	cartRepo    cart.Repository
	productRepo product.Repository
	voucherRepo voucher.Repository
	log         *logger.Logger
}

func NewCartService(
	cartRepo cart.Repository,
	productRepo product.Repository,
	voucherRepo voucher.Repository,
	log *logger.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		voucherRepo: voucherRepo,
		log:         log,
	}
}

func (s *cartService) CreateCart(ctx context.Context, req dto.CreateCartRequest) (*dto.CartResponse, error) {
	id := req.ID
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CART)
	}

	c := s.cartRepo.GetOrCreate(ctx, id)
	if err := c.Activate(); err != nil {
		return nil, err
	}

	s.log.Infow("created cart", "cart_id", id)
	return s.toResponse(ctx, c)
}

func (s *cartService) DestroyCart(ctx context.Context, cartID string) error {
	c, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		return err
	}
	if err := c.Deactivate(); err != nil {
		return err
	}

	s.log.Infow("destroyed cart", "cart_id", cartID)
	return nil
}

func (s *cartService) AddProductToCart(ctx context.Context, cartID string, req dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProductExists(ctx, req.ProductID); err != nil {
		return nil, err
	}

	if err := c.AddItem(req.ProductID, req.Amount, s.freebieTarget(ctx, req.ProductID)); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

func (s *cartService) UpdateProduct(ctx context.Context, cartID string, productID int, req dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProductExists(ctx, productID); err != nil {
		return nil, err
	}

	if err := c.SetItemQuantity(productID, req.Amount, s.freebieTarget(ctx, productID)); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

func (s *cartService) RemoveProductFromCart(ctx context.Context, cartID string, productID int) (*dto.CartResponse, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(productID, s.freebieTarget(ctx, productID)); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

func (s *cartService) ApplyVoucher(ctx context.Context, cartID string, req dto.ApplyVoucherRequest) (*dto.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	// Re-applying an already present voucher is a no-op, checked before the
	// catalog lookup so an applied voucher stays applied even if the catalog
	// entry were overwritten.
	applied, err := c.HasVoucher(req.Name)
	if err != nil {
		return nil, err
	}
	if !applied {
		v, err := s.voucherRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if err := c.ApplyVoucher(v); err != nil {
			return nil, err
		}
	}
	return s.toResponse(ctx, c)
}

func (s *cartService) RemoveVoucher(ctx context.Context, cartID string, name string) (*dto.CartResponse, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := c.RemoveVoucher(name); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*dto.CartResponse, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

func (s *cartService) ListProducts(ctx context.Context, cartID string) ([]dto.CartLineItemResponse, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.buildLineItems(ctx, c)
}

func (s *cartService) ListVoucherNames(ctx context.Context, cartID string) ([]string, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return c.VoucherNames()
}

// GetTotalPrice sums paid line items only; freebies never contribute.
func (s *cartService) GetTotalPrice(ctx context.Context, cartID string) (decimal.Decimal, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.totalPrice(ctx, c)
}

// GetTotalAmount runs the voucher pipeline over the total price.
func (s *cartService) GetTotalAmount(ctx context.Context, cartID string) (decimal.Decimal, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.totalAmount(ctx, c)
}

func (s *cartService) GetTotalQuantity(ctx context.Context, cartID string) (int, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return c.TotalQuantity()
}

func (s *cartService) GetCountUniqueProducts(ctx context.Context, cartID string) (int, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return c.UniqueProductCount()
}

func (s *cartService) IsCartEmpty(ctx context.Context, cartID string) (bool, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return false, err
	}
	return c.IsEmpty()
}

func (s *cartService) IsProductInCart(ctx context.Context, cartID string, productID int) (bool, error) {
	c, err := s.activeCart(ctx, cartID)
	if err != nil {
		return false, err
	}
	return c.HasProduct(productID)
}

// activeCart resolves a cart id and asserts the destroyed-state precondition
// before any catalog lookup, so lifecycle errors win over product errors.
func (s *cartService) activeCart(ctx context.Context, cartID string) (*cart.Cart, error) {
	c, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := c.EnsureActive(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cartService) ensureProductExists(ctx context.Context, productID int) error {
	if _, err := s.productRepo.Get(ctx, productID); err != nil {
		return err
	}
	return nil
}

// freebieTarget returns the freebie association for a product, or nil when
// none is registered.
func (s *cartService) freebieTarget(ctx context.Context, productID int) *int {
	if target, ok := s.productRepo.GetFreebieTarget(ctx, productID); ok {
		return &target
	}
	return nil
}

func (s *cartService) totalPrice(ctx context.Context, c *cart.Cart) (decimal.Decimal, error) {
	items, err := c.Items()
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for id, qty := range items {
		p, err := s.productRepo.Get(ctx, id)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total, nil
}

func (s *cartService) totalAmount(ctx context.Context, c *cart.Cart) (decimal.Decimal, error) {
	base, err := s.totalPrice(ctx, c)
	if err != nil {
		return decimal.Zero, err
	}
	vouchers, err := c.Vouchers()
	if err != nil {
		return decimal.Zero, err
	}
	return voucher.ApplyAll(base, vouchers), nil
}

// buildLineItems produces one aggregated record per product id with a
// positive quantity in either ledger, sorted by id for stable output.
func (s *cartService) buildLineItems(ctx context.Context, c *cart.Cart) ([]dto.CartLineItemResponse, error) {
	items, err := c.Items()
	if err != nil {
		return nil, err
	}
	freebies, err := c.Freebies()
	if err != nil {
		return nil, err
	}

	ids := lo.Uniq(append(lo.Keys(items), lo.Keys(freebies)...))
	sort.Ints(ids)

	lineItems := make([]dto.CartLineItemResponse, 0, len(ids))
	for _, id := range ids {
		amount := items[id]
		freeAmount := freebies[id]

		line := dto.CartLineItemResponse{
			ID:          id,
			Amount:      amount,
			FreeAmount:  freeAmount,
			TotalAmount: amount + freeAmount,
			TotalPrice:  decimal.Zero,
		}

		// A freebie association may point at an unregistered product; the
		// quantity is still reported, with no catalog record to enrich it.
		if p, err := s.productRepo.Get(ctx, id); err == nil {
			line.Name = p.Name
			line.Price = p.Price
			line.TotalPrice = p.Price.Mul(decimal.NewFromInt(int64(amount)))
		}

		lineItems = append(lineItems, line)
	}
	return lineItems, nil
}

func (s *cartService) toResponse(ctx context.Context, c *cart.Cart) (*dto.CartResponse, error) {
	lineItems, err := s.buildLineItems(ctx, c)
	if err != nil {
		return nil, err
	}
	voucherNames, err := c.VoucherNames()
	if err != nil {
		return nil, err
	}
	totalPrice, err := s.totalPrice(ctx, c)
	if err != nil {
		return nil, err
	}
	totalAmount, err := s.totalAmount(ctx, c)
	if err != nil {
		return nil, err
	}
	totalQuantity, err := c.TotalQuantity()
	if err != nil {
		return nil, err
	}
	uniqueProducts, err := c.UniqueProductCount()
	if err != nil {
		return nil, err
	}
	empty, err := c.IsEmpty()
	if err != nil {
		return nil, err
	}

	return &dto.CartResponse{
		ID:             c.ID,
		Status:         c.Status,
		Items:          lineItems,
		Vouchers:       voucherNames,
		TotalPrice:     totalPrice,
		TotalAmount:    totalAmount,
		TotalQuantity:  totalQuantity,
		UniqueProducts: uniqueProducts,
		Empty:          empty,
	}, nil
}
