package service

import (
	"context"
	"testing"

	"github.com/flexcart/flexcart/internal/api/dto"
	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/flexcart/flexcart/internal/logger"
	"github.com/flexcart/flexcart/internal/repository"
	"github.com/flexcart/flexcart/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CartServiceSuite struct {
	suite.Suite
	ctx         context.Context
	cartService CartService
	cartID      string
}

func TestCartService(t *testing.T) {
	suite.Run(t, new(CartServiceSuite))
}

func (s *CartServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.cartService = NewCartService(
		repository.NewInMemoryCartStore(),
		testutil.SeedProductStore(),
		testutil.SeedVoucherStore(),
		logger.GetLogger(),
	)

	resp, err := s.cartService.CreateCart(s.ctx, dto.CreateCartRequest{ID: "cart_test"})
	s.NoError(err)
	s.cartID = resp.ID
}

func (s *CartServiceSuite) addProduct(productID, amount int) *dto.CartResponse {
	resp, err := s.cartService.AddProductToCart(s.ctx, s.cartID, dto.AddCartItemRequest{
		ProductID: productID,
		Amount:    amount,
	})
	s.NoError(err)
	return resp
}

func (s *CartServiceSuite) applyVoucher(name string) {
	_, err := s.cartService.ApplyVoucher(s.ctx, s.cartID, dto.ApplyVoucherRequest{Name: name})
	s.NoError(err)
}

func (s *CartServiceSuite) assertTotalAmount(want int64) {
	total, err := s.cartService.GetTotalAmount(s.ctx, s.cartID)
	s.NoError(err)
	s.True(decimal.NewFromInt(want).Equal(total), "total amount %s != %d", total, want)
}

func (s *CartServiceSuite) TestCreateCartTwiceFails() {
	_, err := s.cartService.CreateCart(s.ctx, dto.CreateCartRequest{ID: s.cartID})
	s.True(ierr.IsCartAlreadyExists(err))
}

func (s *CartServiceSuite) TestCreateCartGeneratesID() {
	resp, err := s.cartService.CreateCart(s.ctx, dto.CreateCartRequest{})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.NotEqual(s.cartID, resp.ID)
	s.True(resp.Empty)
}

func (s *CartServiceSuite) TestDestroyAndRecreate() {
	s.addProduct(1, 1)

	s.NoError(s.cartService.DestroyCart(s.ctx, s.cartID))
	s.True(ierr.IsCartAlreadyDestroyed(s.cartService.DestroyCart(s.ctx, s.cartID)))

	resp, err := s.cartService.CreateCart(s.ctx, dto.CreateCartRequest{ID: s.cartID})
	s.NoError(err)
	s.True(resp.Empty)
}

func (s *CartServiceSuite) TestOperationsOnUnknownCart() {
	_, err := s.cartService.GetCart(s.ctx, "cart_unknown")
	s.True(ierr.IsCartAlreadyDestroyed(err))

	_, err = s.cartService.AddProductToCart(s.ctx, "cart_unknown", dto.AddCartItemRequest{
		ProductID: 1,
		Amount:    1,
	})
	s.True(ierr.IsCartAlreadyDestroyed(err))
}

func (s *CartServiceSuite) TestAddUnknownProduct() {
	_, err := s.cartService.AddProductToCart(s.ctx, s.cartID, dto.AddCartItemRequest{
		ProductID: 99,
		Amount:    1,
	})
	s.True(ierr.IsProductNotFound(err))
}

func (s *CartServiceSuite) TestAddNegativeAmountIsNoop() {
	resp := s.addProduct(1, -5)
	s.True(resp.Empty)
	s.Equal(0, resp.TotalQuantity)
}

func (s *CartServiceSuite) TestAddProductWithFreebie() {
	// Product 7 (price 1000) grants one product 1 per unit.
	resp := s.addProduct(7, 1)

	s.Equal(2, resp.UniqueProducts)
	s.Equal(2, resp.TotalQuantity)
	s.True(decimal.NewFromInt(1000).Equal(resp.TotalPrice))
	s.True(decimal.NewFromInt(1000).Equal(resp.TotalAmount))

	s.Len(resp.Items, 2)
	s.Equal(1, resp.Items[0].ID)
	s.Equal(0, resp.Items[0].Amount)
	s.Equal(1, resp.Items[0].FreeAmount)
	s.True(decimal.Zero.Equal(resp.Items[0].TotalPrice))
	s.Equal(7, resp.Items[1].ID)
	s.Equal(1, resp.Items[1].Amount)
	s.Equal(0, resp.Items[1].FreeAmount)
	s.True(decimal.NewFromInt(1000).Equal(resp.Items[1].TotalPrice))
}

func (s *CartServiceSuite) TestPaidAndFreeQuantitiesCombine() {
	// Product 1 is both purchased and granted free by product 7.
	s.addProduct(1, 2)
	resp := s.addProduct(7, 1)

	s.Equal(2, resp.UniqueProducts)
	s.Equal(4, resp.TotalQuantity)

	item := resp.Items[0]
	s.Equal(1, item.ID)
	s.Equal(2, item.Amount)
	s.Equal(1, item.FreeAmount)
	s.Equal(3, item.TotalAmount)
	// Only the paid quantity is billed.
	s.True(decimal.NewFromInt(20).Equal(item.TotalPrice))
}

func (s *CartServiceSuite) TestUpdateProductSetsQuantity() {
	s.addProduct(7, 5)

	resp, err := s.cartService.UpdateProduct(s.ctx, s.cartID, 7, dto.UpdateCartItemRequest{Amount: 2})
	s.NoError(err)
	s.Equal(4, resp.TotalQuantity)

	item := resp.Items[1]
	s.Equal(7, item.ID)
	s.Equal(2, item.Amount)

	// The freebie ledger followed the delta down.
	s.Equal(1, resp.Items[0].ID)
	s.Equal(2, resp.Items[0].FreeAmount)
}

func (s *CartServiceSuite) TestUpdateUnknownProduct() {
	_, err := s.cartService.UpdateProduct(s.ctx, s.cartID, 99, dto.UpdateCartItemRequest{Amount: 1})
	s.True(ierr.IsProductNotFound(err))
}

func (s *CartServiceSuite) TestRemoveProduct() {
	s.addProduct(7, 2)

	resp, err := s.cartService.RemoveProductFromCart(s.ctx, s.cartID, 7)
	s.NoError(err)
	s.True(resp.Empty)
}

func (s *CartServiceSuite) TestRemoveProductNotInCart() {
	_, err := s.cartService.RemoveProductFromCart(s.ctx, s.cartID, 1)
	s.True(ierr.IsProductNotInCart(err))

	// Zeroed via update, then removed: still not in cart.
	s.addProduct(1, 1)
	_, err = s.cartService.UpdateProduct(s.ctx, s.cartID, 1, dto.UpdateCartItemRequest{Amount: 0})
	s.NoError(err)
	_, err = s.cartService.RemoveProductFromCart(s.ctx, s.cartID, 1)
	s.True(ierr.IsProductNotInCart(err))
}

func (s *CartServiceSuite) TestIsProductInCart() {
	s.addProduct(7, 1)

	inCart, err := s.cartService.IsProductInCart(s.ctx, s.cartID, 7)
	s.NoError(err)
	s.True(inCart)

	// Freebie target counts.
	inCart, err = s.cartService.IsProductInCart(s.ctx, s.cartID, 1)
	s.NoError(err)
	s.True(inCart)

	inCart, err = s.cartService.IsProductInCart(s.ctx, s.cartID, 2)
	s.NoError(err)
	s.False(inCart)
}

func (s *CartServiceSuite) TestEmptyCartTotals() {
	s.assertTotalAmount(0)

	price, err := s.cartService.GetTotalPrice(s.ctx, s.cartID)
	s.NoError(err)
	s.True(decimal.Zero.Equal(price))

	empty, err := s.cartService.IsCartEmpty(s.ctx, s.cartID)
	s.NoError(err)
	s.True(empty)

	count, err := s.cartService.GetCountUniqueProducts(s.ctx, s.cartID)
	s.NoError(err)
	s.Equal(0, count)
}

func (s *CartServiceSuite) TestFixedVoucherZeroesTotal() {
	s.addProduct(1, 1)
	s.assertTotalAmount(10)

	s.applyVoucher("oct10")
	s.assertTotalAmount(0)
}

func (s *CartServiceSuite) TestPercentageVoucherBelowCap() {
	s.addProduct(1, 2)

	// 20% of 20 is 4, below the cap of 20.
	s.applyVoucher("free")
	s.assertTotalAmount(16)
}

func (s *CartServiceSuite) TestVoucherApplicationOrderIsNormalized() {
	s.addProduct(7, 1)

	// Applied out of pricing order on purpose.
	s.applyVoucher("free50")
	s.applyVoucher("oct10")
	s.applyVoucher("free")
	s.applyVoucher("oct100")

	// 1000 -100 -10 = 890, capped 20 off = 870, then 50% = 435.
	s.assertTotalAmount(435)
}

func (s *CartServiceSuite) TestVoucherPipelineShortCircuitsAtZero() {
	s.addProduct(1, 2)

	s.applyVoucher("massive")
	s.applyVoucher("free")
	s.assertTotalAmount(0)
}

func (s *CartServiceSuite) TestApplyVoucherIsIdempotent() {
	s.addProduct(1, 1)

	s.applyVoucher("oct10")
	s.applyVoucher("OCT10")

	names, err := s.cartService.ListVoucherNames(s.ctx, s.cartID)
	s.NoError(err)
	s.Equal([]string{"oct10"}, names)
}

func (s *CartServiceSuite) TestApplyUnknownVoucher() {
	_, err := s.cartService.ApplyVoucher(s.ctx, s.cartID, dto.ApplyVoucherRequest{Name: "nope"})
	s.True(ierr.IsVoucherNotFound(err))
}

func (s *CartServiceSuite) TestRemoveVoucherRestoresTotal() {
	s.addProduct(1, 1)
	s.applyVoucher("oct10")
	s.assertTotalAmount(0)

	_, err := s.cartService.RemoveVoucher(s.ctx, s.cartID, "oct10")
	s.NoError(err)
	s.assertTotalAmount(10)

	_, err = s.cartService.RemoveVoucher(s.ctx, s.cartID, "oct10")
	s.True(ierr.IsVoucherNotFound(err))
}

func (s *CartServiceSuite) TestTotalsNeverNegative() {
	s.addProduct(5, 1)

	s.applyVoucher("massive")
	s.applyVoucher("oct100")
	s.applyVoucher("free50")
	s.assertTotalAmount(0)

	price, err := s.cartService.GetTotalPrice(s.ctx, s.cartID)
	s.NoError(err)
	s.False(price.IsNegative())
}
