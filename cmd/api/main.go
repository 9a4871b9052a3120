package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ranashahzaibf22/zero-limit/internal/config"
	"github.com/ranashahzaibf22/zero-limit/internal/db"
	"github.com/ranashahzaibf22/zero-limit/internal/httpserver"
	"github.com/ranashahzaibf22/zero-limit/internal/pricing"
	"github.com/ranashahzaibf22/zero-limit/internal/repository/cartstore"
	orderrepo "github.com/ranashahzaibf22/zero-limit/internal/repository/order"
	productrepo "github.com/ranashahzaibf22/zero-limit/internal/repository/product"
	promotionrepo "github.com/ranashahzaibf22/zero-limit/internal/repository/promotion"
	reviewrepo "github.com/ranashahzaibf22/zero-limit/internal/repository/review"
	wishlistrepo "github.com/ranashahzaibf22/zero-limit/internal/repository/wishlist"
	checkoutsvc "github.com/ranashahzaibf22/zero-limit/internal/service/checkout"
	productsvc "github.com/ranashahzaibf22/zero-limit/internal/service/product"
	promotionsvc "github.com/ranashahzaibf22/zero-limit/internal/service/promotion"
	reviewsvc "github.com/ranashahzaibf22/zero-limit/internal/service/review"
	wishlistsvc "github.com/ranashahzaibf22/zero-limit/internal/service/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	carts, err := cartstore.New(cfg.RedisURL)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer carts.Close()

	calc := pricing.NewCalculator(cfg.ShippingFeeCents)

	productService := productsvc.New(productrepo.NewPostgres(dbpool, logger))
	promotionService := promotionsvc.New(promotionrepo.NewPostgres(dbpool, logger))
	reviewService := reviewsvc.New(reviewrepo.NewPostgres(dbpool, logger))
	wishlistService := wishlistsvc.New(wishlistrepo.NewPostgres(dbpool, logger))
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	checkoutService := checkoutsvc.New(orderRepo, carts, calc, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Products:     productService,
		Promotions:   promotionService,
		Checkout:     checkoutService,
		Reviews:      reviewService,
		Wishlist:     wishlistService,
		Carts:        carts,
		Orders:       orderRepo,
		Calc:         calc,
		AdminToken:   cfg.AdminToken,
		AllowOrigins: cfg.CORSAllowOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
