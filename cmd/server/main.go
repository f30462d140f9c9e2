package main

import (
	"context"
	"net/http"
	"time"

	v1 "github.com/flexcart/flexcart/internal/api/v1"
	"github.com/flexcart/flexcart/internal/config"
	"github.com/flexcart/flexcart/internal/logger"
	"github.com/flexcart/flexcart/internal/repository"
	"github.com/flexcart/flexcart/internal/router"
	"github.com/flexcart/flexcart/internal/service"
	"github.com/flexcart/flexcart/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title FlexCart API
// @version 1.0
// @description Per-session shopping cart engine with freebies and voucher discounts
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Core dependencies
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,

			// Repositories
			repository.NewCartRepository,
			repository.NewProductRepository,
			repository.NewVoucherRepository,

			// Services
			service.NewProductService,
			service.NewVoucherService,
			service.NewCartService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewProductHandler,
			v1.NewVoucherHandler,
			v1.NewCartHandler,
			provideHandlers,
			router.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHandlers(
	health *v1.HealthHandler,
	product *v1.ProductHandler,
	voucher *v1.VoucherHandler,
	cart *v1.CartHandler,
) router.Handlers {
	return router.Handlers{
		Health:  health,
		Product: product,
		Voucher: voucher,
		Cart:    cart,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
