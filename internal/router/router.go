package router

import (
	v1 "github.com/flexcart/flexcart/internal/api/v1"
	"github.com/flexcart/flexcart/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles all route handlers for router assembly.
type Handlers struct {
	Health  *v1.HealthHandler
	Product *v1.ProductHandler
	Voucher *v1.VoucherHandler
	Cart    *v1.CartHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/healthz", handlers.Health.Health)

	group := router.Group("/v1")

	products := group.Group("/products")
	products.POST("", handlers.Product.CreateProduct)
	products.GET("/:id", handlers.Product.GetProduct)
	products.POST("/:id/freebies", handlers.Product.RegisterFreebie)

	vouchers := group.Group("/vouchers")
	vouchers.POST("", handlers.Voucher.CreateVoucher)
	vouchers.GET("/:name", handlers.Voucher.GetVoucher)

	carts := group.Group("/carts")
	carts.POST("", handlers.Cart.CreateCart)
	carts.GET("/:id", handlers.Cart.GetCart)
	carts.DELETE("/:id", handlers.Cart.DestroyCart)
	carts.POST("/:id/items", handlers.Cart.AddItem)
	carts.PUT("/:id/items/:productId", handlers.Cart.UpdateItem)
	carts.DELETE("/:id/items/:productId", handlers.Cart.RemoveItem)
	carts.POST("/:id/vouchers", handlers.Cart.ApplyVoucher)
	carts.DELETE("/:id/vouchers/:name", handlers.Cart.RemoveVoucher)

	return router
}
