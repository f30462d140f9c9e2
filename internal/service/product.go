package service

import (
	"context"

	"github.com/flexcart/flexcart/internal/api/dto"
	"github.com/flexcart/flexcart/internal/domain/product"
	"github.com/flexcart/flexcart/internal/logger"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id int) (*dto.ProductResponse, error)
	RegisterFreebie(ctx context.Context, productID int, req dto.RegisterFreebieRequest) error
}

type productService struct {
	repo product.Repository
	log  *logger.Logger
}

func NewProductService(repo product.Repository, log *logger.Logger) ProductService {
	return &productService{repo: repo, log: log}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repo.Add(ctx, req.ToProduct())
	if err != nil {
		return nil, err
	}

	s.log.Infow("registered product", "product_id", id, "name", req.Name)

	return s.GetProduct(ctx, id)
}

func (s *productService) GetProduct(ctx context.Context, id int) (*dto.ProductResponse, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var freebieID *int
	if target, ok := s.repo.GetFreebieTarget(ctx, id); ok {
		freebieID = &target
	}

	return dto.NewProductResponse(p, freebieID), nil
}

func (s *productService) RegisterFreebie(ctx context.Context, productID int, req dto.RegisterFreebieRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// The association is permissive: neither id is checked against the
	// catalog, so freebies can be registered ahead of the products.
	if err := s.repo.RegisterFreebie(ctx, productID, req.FreebieProductID); err != nil {
		return err
	}

	s.log.Infow("registered freebie",
		"product_id", productID,
		"freebie_product_id", req.FreebieProductID)
	return nil
}
