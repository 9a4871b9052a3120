package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
	"github.com/ranashahzaibf22/zero-limit/internal/pricing"
	checkoutsvc "github.com/ranashahzaibf22/zero-limit/internal/service/checkout"
	productsvc "github.com/ranashahzaibf22/zero-limit/internal/service/product"
	promotionsvc "github.com/ranashahzaibf22/zero-limit/internal/service/promotion"
	reviewsvc "github.com/ranashahzaibf22/zero-limit/internal/service/review"
)

// ProductService exposes catalog reads and admin catalog writes.
type ProductService interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, in productsvc.UpsertInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// PromotionService validates codes for shoppers and manages them for admins.
type PromotionService interface {
	Validate(ctx context.Context, code string) (*domain.Promotion, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	Create(ctx context.Context, in promotionsvc.UpsertInput) (*domain.Promotion, error)
	Update(ctx context.Context, id string, in promotionsvc.UpsertInput) (*domain.Promotion, error)
	Delete(ctx context.Context, id string) error
}

// CheckoutService turns a cart submission into a placed order.
type CheckoutService interface {
	Submit(ctx context.Context, in checkoutsvc.Input) (*checkoutsvc.Result, error)
}

// ReviewService records and lists product reviews.
type ReviewService interface {
	Create(ctx context.Context, userID string, in reviewsvc.CreateInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) (*reviewsvc.ProductReviews, error)
}

// WishlistService manages per-user saved products.
type WishlistService interface {
	Add(ctx context.Context, userID, productID string) (*domain.WishlistItem, error)
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]domain.WishlistItem, error)
}

// CartStore persists session carts between requests.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// OrderReader serves admin order views and status updates.
type OrderReader interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// Deps carries everything the routes need.
type Deps struct {
	Products     ProductService
	Promotions   PromotionService
	Checkout     CheckoutService
	Reviews      ReviewService
	Wishlist     WishlistService
	Carts        CartStore
	Orders       OrderReader
	Calc         pricing.Calculator
	AdminToken   string
	AllowOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", sessionHeader, userHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, sessionHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Products))
		api.GET("/products/:id", getProductHandler(deps.Products))

		api.GET("/promotions/validate", validatePromotionHandler(deps.Promotions))

		api.GET("/cart", getCartHandler(deps.Carts, deps.Calc))
		api.POST("/cart/items", addCartItemHandler(deps.Carts, deps.Products, deps.Calc))
		api.PATCH("/cart/items", updateCartItemHandler(deps.Carts, deps.Calc))
		api.DELETE("/cart/items", removeCartItemHandler(deps.Carts, deps.Calc))
		api.DELETE("/cart", clearCartHandler(deps.Carts))

		api.POST("/checkout", checkoutHandler(deps.Checkout, deps.Carts, deps.Promotions, logger))

		api.GET("/orders", listUserOrdersHandler(deps.Orders))

		api.GET("/reviews", listReviewsHandler(deps.Reviews))
		api.POST("/reviews", createReviewHandler(deps.Reviews))

		api.GET("/wishlist", listWishlistHandler(deps.Wishlist))
		api.POST("/wishlist", addWishlistHandler(deps.Wishlist))
		api.DELETE("/wishlist", removeWishlistHandler(deps.Wishlist))
	}

	admin := router.Group("/api/admin", adminAuth(deps.AdminToken))
	{
		admin.GET("/promotions", listPromotionsHandler(deps.Promotions))
		admin.POST("/promotions", createPromotionHandler(deps.Promotions))
		admin.PUT("/promotions/:id", updatePromotionHandler(deps.Promotions))
		admin.DELETE("/promotions/:id", deletePromotionHandler(deps.Promotions))

		admin.POST("/products", upsertProductHandler(deps.Products))
		admin.DELETE("/products/:id", deleteProductHandler(deps.Products))

		admin.GET("/orders", listOrdersHandler(deps.Orders))
		admin.GET("/orders/:id", getOrderHandler(deps.Orders))
		admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.Orders))
	}

	return router
}
