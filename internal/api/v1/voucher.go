package v1

import (
	"net/http"

	"github.com/flexcart/flexcart/internal/api/dto"
	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/flexcart/flexcart/internal/logger"
	"github.com/flexcart/flexcart/internal/service"
	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	service service.VoucherService
	log     *logger.Logger
}

func NewVoucherHandler(service service.VoucherService, log *logger.Logger) *VoucherHandler {
	return &VoucherHandler{service: service, log: log}
}

// @Summary Register a voucher
// @Description Register a fixed or percentage discount voucher
// @Tags Vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /vouchers [post]
func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateVoucher(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a voucher
// @Description Get a voucher by name, case-insensitively
// @Tags Vouchers
// @Produce json
// @Param name path string true "Voucher name"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /vouchers/{name} [get]
func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	resp, err := h.service.GetVoucher(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
