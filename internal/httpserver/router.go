package httpserver

import (
	"context"
	"log"
	"time"

	"coffeestore/internal/domain"
	"coffeestore/internal/metrics"
	bannersvc "coffeestore/internal/service/banner"
	catalogsvc "coffeestore/internal/service/catalog"
	checkoutsvc "coffeestore/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the routes depend on.
type Deps struct {
	CatalogSvc  catalogService
	BannerSvc   bannerService
	CartSvc     cartService
	CheckoutSvc checkoutService
}

type catalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in catalogsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in catalogsvc.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type bannerService interface {
	Create(ctx context.Context, in bannersvc.CreateInput) (*domain.Banner, error)
	ListActive(ctx context.Context) ([]domain.Banner, error)
}

type cartService interface {
	AddItem(ctx context.Context, owner, productID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, owner, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, owner, productID string) (*domain.Cart, error)
	GetHydrated(ctx context.Context, owner string) (*domain.HydratedCart, error)
}

type checkoutService interface {
	PlaceOrder(ctx context.Context, owner string, in checkoutsvc.PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, m *metrics.ServerMetrics, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))
	if m != nil {
		router.Use(metricsMiddleware(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.GET("/products", listProductsHandler(logger, deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(logger, deps.CatalogSvc))
	api.POST("/products", adminRequired(), createProductHandler(logger, deps.CatalogSvc))
	api.PUT("/products/:id", adminRequired(), updateProductHandler(logger, deps.CatalogSvc))
	api.DELETE("/products/:id", adminRequired(), deleteProductHandler(logger, deps.CatalogSvc))

	api.GET("/banners", listBannersHandler(logger, deps.BannerSvc))
	api.POST("/banners", adminRequired(), createBannerHandler(logger, deps.BannerSvc))

	cart := api.Group("/cart", ownerRequired())
	cart.GET("", getCartHandler(logger, deps.CartSvc))
	cart.POST("/items", addCartItemHandler(logger, deps.CartSvc))
	cart.PUT("/items/:productId", updateCartItemHandler(logger, deps.CartSvc))
	cart.DELETE("/items/:productId", removeCartItemHandler(logger, deps.CartSvc))

	api.POST("/orders", ownerRequired(), placeOrderHandler(logger, deps.CheckoutSvc, m))
	api.GET("/orders", adminRequired(), listOrdersHandler(logger, deps.CheckoutSvc))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", headerUserID, headerUserRole}
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
