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

type CartHandler struct {
	service service.CartService
	log     *logger.Logger
}

func NewCartHandler(service service.CartService, log *logger.Logger) *CartHandler {
	return &CartHandler{service: service, log: log}
}

// @Summary Create a cart
// @Description Create a cart, optionally with a client-supplied id
// @Tags Carts
// @Accept json
// @Produce json
// @Param cart body dto.CreateCartRequest false "Cart"
// @Success 201 {object} dto.CartResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /carts [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req dto.CreateCartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Please check the request payload").
				Mark(ierr.ErrValidation))
			return
		}
	}

	resp, err := h.service.CreateCart(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Destroy a cart
// @Description Destroy a cart and discard its ledgers
// @Tags Carts
// @Param id path string true "Cart ID"
// @Success 204
// @Failure 409 {object} ierr.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) DestroyCart(c *gin.Context) {
	if err := h.service.DestroyCart(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get a cart
// @Description Get the aggregated cart view: line items, vouchers and totals
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} dto.CartResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /carts/{id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	resp, err := h.service.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Add a product to a cart
// @Description Add a quantity of a product; freebies are granted automatically
// @Tags Carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param item body dto.AddCartItemRequest true "Item"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.AddProductToCart(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a cart line item
// @Description Set the quantity of a product, adjusting freebies by the delta
// @Tags Carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path int true "Product ID"
// @Param item body dto.UpdateCartItemRequest true "Item"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /carts/{id}/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := cartProductIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), productID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Remove a product from a cart
// @Description Remove a line item entirely, releasing its freebies
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /carts/{id}/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := cartProductIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.RemoveProductFromCart(c.Request.Context(), c.Param("id"), productID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Apply a voucher to a cart
// @Description Apply a registered voucher by name; re-applying is a no-op
// @Tags Carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param voucher body dto.ApplyVoucherRequest true "Voucher"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /carts/{id}/vouchers [post]
func (h *CartHandler) ApplyVoucher(c *gin.Context) {
	var req dto.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ApplyVoucher(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Remove a voucher from a cart
// @Description Remove an applied voucher by name
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param name path string true "Voucher name"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /carts/{id}/vouchers/{name} [delete]
func (h *CartHandler) RemoveVoucher(c *gin.Context) {
	resp, err := h.service.RemoveVoucher(c.Request.Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func cartProductIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Product id must be an integer").
			Mark(ierr.ErrValidation)
	}
	return id, nil
}
