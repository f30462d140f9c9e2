package service

import (
	"context"

	"github.com/flexcart/flexcart/internal/api/dto"
	"github.com/flexcart/flexcart/internal/domain/voucher"
	"github.com/flexcart/flexcart/internal/logger"
)

type VoucherService interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*dto.VoucherResponse, error)
	GetVoucher(ctx context.Context, name string) (*dto.VoucherResponse, error)
}

type voucherService struct {
	repo voucher.Repository
	log  *logger.Logger
}

func NewVoucherService(repo voucher.Repository, log *logger.Logger) VoucherService {
	return &voucherService{repo: repo, log: log}
}

func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*dto.VoucherResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v := req.ToVoucher()
	if err := s.repo.Save(ctx, v); err != nil {
		return nil, err
	}

	s.log.Infow("registered voucher", "voucher", v.Name, "type", v.Type)

	return dto.NewVoucherResponse(v), nil
}

func (s *voucherService) GetVoucher(ctx context.Context, name string) (*dto.VoucherResponse, error) {
	v, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.NewVoucherResponse(v), nil
}
