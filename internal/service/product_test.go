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

type ProductServiceSuite struct {
	suite.Suite
	ctx            context.Context
	productService ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.productService = NewProductService(repository.NewInMemoryProductStore(), logger.GetLogger())
}

func (s *ProductServiceSuite) TestCreateProductWithExplicitID() {
	resp, err := s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{
		ID:    5,
		Name:  "Product 5",
		Price: decimal.NewFromInt(25),
	})
	s.NoError(err)
	s.Equal(5, resp.ID)
	s.Equal("Product 5", resp.Name)
	s.True(decimal.NewFromInt(25).Equal(resp.Price))
}

func (s *ProductServiceSuite) TestCreateProductDuplicateID() {
	_, err := s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{
		ID:   1,
		Name: "Product 1",
	})
	s.NoError(err)

	_, err = s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{
		ID:   1,
		Name: "Another product",
	})
	s.True(ierr.IsDuplicateProductID(err))
}

func (s *ProductServiceSuite) TestAutoAssignSkipsTakenIDs() {
	// Explicit registrations occupy ids ahead of the counter.
	for _, id := range []int{1, 2, 4} {
		_, err := s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{
			ID:   id,
			Name: "Seed",
		})
		s.NoError(err)
	}

	resp, err := s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{Name: "Auto A"})
	s.NoError(err)
	s.Equal(3, resp.ID)

	resp, err = s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{Name: "Auto B"})
	s.NoError(err)
	s.Equal(5, resp.ID)
}

func (s *ProductServiceSuite) TestCreateProductValidation() {
	_, err := s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{Name: ""})
	s.True(ierr.IsValidation(err))

	_, err = s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{
		Name:  "Negative",
		Price: decimal.NewFromInt(-1),
	})
	s.True(ierr.IsValidation(err))
}

func (s *ProductServiceSuite) TestGetUnknownProduct() {
	_, err := s.productService.GetProduct(s.ctx, 42)
	s.True(ierr.IsProductNotFound(err))
}

func (s *ProductServiceSuite) TestRegisterFreebie() {
	_, err := s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{ID: 7, Name: "Product 7"})
	s.NoError(err)

	// The association is permissive: the target does not need to exist.
	err = s.productService.RegisterFreebie(s.ctx, 7, dto.RegisterFreebieRequest{FreebieProductID: 1})
	s.NoError(err)

	resp, err := s.productService.GetProduct(s.ctx, 7)
	s.NoError(err)
	s.NotNil(resp.FreebieProductID)
	s.Equal(1, *resp.FreebieProductID)
}

func (s *ProductServiceSuite) TestRegisterFreebieOverwrites() {
	err := s.productService.RegisterFreebie(s.ctx, 7, dto.RegisterFreebieRequest{FreebieProductID: 1})
	s.NoError(err)
	err = s.productService.RegisterFreebie(s.ctx, 7, dto.RegisterFreebieRequest{FreebieProductID: 2})
	s.NoError(err)

	_, err = s.productService.CreateProduct(s.ctx, dto.CreateProductRequest{ID: 7, Name: "Product 7"})
	s.NoError(err)

	resp, err := s.productService.GetProduct(s.ctx, 7)
	s.NoError(err)
	s.NotNil(resp.FreebieProductID)
	s.Equal(2, *resp.FreebieProductID)
}
