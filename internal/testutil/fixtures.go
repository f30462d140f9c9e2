package testutil

import (
	"context"

	"github.com/flexcart/flexcart/internal/domain/product"
	"github.com/flexcart/flexcart/internal/domain/voucher"
	"github.com/flexcart/flexcart/internal/repository"
	"github.com/shopspring/decimal"
)

// FreebieFixture pairs a triggering product with its granted product.
type FreebieFixture struct {
	ProductID int
	FreebieID int
}

// ProductFixtures is the canonical seed catalog used across test suites.
var ProductFixtures = []*product.Product{
	{ID: 1, Name: "Product 1", Price: decimal.NewFromInt(10)},
	{ID: 2, Name: "Product 2", Price: decimal.NewFromInt(50)},
	{ID: 3, Name: "Product 3", Price: decimal.NewFromInt(200)},
	{ID: 4, Name: "Product 4", Price: decimal.NewFromInt(500)},
	{ID: 5, Name: "Product 5", Price: decimal.NewFromInt(25)},
	{ID: 6, Name: "Product 6", Price: decimal.NewFromInt(220)},
	{ID: 7, Name: "Product 7", Price: decimal.NewFromInt(1000)},
}

// FreebieFixtures grants product 5 with product 6 and product 1 with
// product 7.
var FreebieFixtures = []FreebieFixture{
	{ProductID: 6, FreebieID: 5},
	{ProductID: 7, FreebieID: 1},
}

// VoucherFixtures covers both voucher variants across the discount range
// the suites exercise.
var VoucherFixtures = []*voucher.Voucher{
	voucher.NewFixedVoucher("oct10", decimal.NewFromInt(10)),
	voucher.NewFixedVoucher("oct100", decimal.NewFromInt(100)),
	voucher.NewFixedVoucher("massive", decimal.NewFromInt(1000)),
	voucher.NewPercentageVoucher("free", decimal.NewFromInt(20), decimal.NewFromInt(20)),
	voucher.NewPercentageVoucher("free100", decimal.NewFromInt(100), decimal.NewFromInt(100)),
	voucher.NewPercentageVoucher("free50", decimal.NewFromInt(50), decimal.NewFromInt(1000)),
	voucher.NewPercentageVoucher("nodiscount", decimal.NewFromInt(5), decimal.Zero),
}

// SeedProductStore returns a product catalog populated with the fixture
// products and freebie associations.
func SeedProductStore() *repository.InMemoryProductStore {
	ctx := context.Background()
	store := repository.NewInMemoryProductStore()
	for _, p := range ProductFixtures {
		if _, err := store.Add(ctx, p); err != nil {
			panic(err)
		}
	}
	for _, f := range FreebieFixtures {
		if err := store.RegisterFreebie(ctx, f.ProductID, f.FreebieID); err != nil {
			panic(err)
		}
	}
	return store
}

// SeedVoucherStore returns a voucher catalog populated with the fixture
// vouchers.
func SeedVoucherStore() *repository.InMemoryVoucherStore {
	ctx := context.Background()
	store := repository.NewInMemoryVoucherStore()
	for _, v := range VoucherFixtures {
		if err := store.Save(ctx, v); err != nil {
			panic(err)
		}
	}
	return store
}
