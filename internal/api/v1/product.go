package v1

import (
	"net/http"
	"strconv"

	"github.com/flexcart/flexcart/internal/api/dto"
	ierr "github.com/flexcart/flexcart/internal/errors"
	"github.com/flexcart/flexcart/internal/logger"
	"github.com/flexcart/flexcart/internal/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service service.ProductService
	log     *logger.Logger
}

func NewProductHandler(service service.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{service: service, log: log}
}

// @Summary Register a product
// @Description Register a product in the catalog, optionally with an explicit id
// @Tags Products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a product
// @Description Get a product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Register a freebie association
// @Description Grant another product free with every purchase of this product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Triggering product ID"
// @Param freebie body dto.RegisterFreebieRequest true "Freebie"
// @Success 204
// @Failure 400 {object} ierr.ErrorResponse
// @Router /products/{id}/freebies [post]
func (h *ProductHandler) RegisterFreebie(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.RegisterFreebieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.RegisterFreebie(c.Request.Context(), id, req); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func productIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Product id must be an integer").
			Mark(ierr.ErrValidation)
	}
	return id, nil
}
