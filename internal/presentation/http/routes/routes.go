package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supamart/pos-api/internal/config"
	"github.com/supamart/pos-api/internal/domain/enum"
	"github.com/supamart/pos-api/internal/domain/repository"
	"github.com/supamart/pos-api/internal/presentation/http/handler"
	"github.com/supamart/pos-api/internal/presentation/http/middleware"
	"github.com/supamart/pos-api/pkg/metrics"
	"github.com/supamart/pos-api/pkg/storage"
	"github.com/supamart/pos-api/pkg/utils"
)

// Handlers groups everything the router needs
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Sale    *handler.SaleHandler
}

// Setup builds the gin engine with all routes and middleware wired
func Setup(
	cfg *config.Config,
	h *Handlers,
	jwtManager *utils.JWTManager,
	store *storage.LocalStorage,
	idempotencyRepo repository.IdempotencyRepository,
	httpMetrics *metrics.HTTPMetrics,
) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.Metrics(httpMetrics))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.App.Name})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.Static("/uploads", store.BasePath())

	// The limiter keys buckets by the authenticated user, so on protected
	// groups it runs after auth. Public auth routes get the same limiter
	// keyed by client IP.
	rateLimit := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Duration).Middleware()
	auth := middleware.AuthMiddleware(jwtManager)
	adminOnly := middleware.RequireRole(enum.UserRoleAdmin)

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/login", rateLimit, h.Auth.Login)
			users.POST("/refresh", rateLimit, h.Auth.RefreshToken)

			users.GET("/me", auth, rateLimit, h.Auth.Me)
			users.PATCH("/updateMe", auth, rateLimit, h.Auth.UpdateMe)
			users.PATCH("/updateMyPassword", auth, rateLimit, h.Auth.UpdateMyPassword)

			users.POST("", auth, rateLimit, adminOnly, h.User.CreateUser)
			users.GET("", auth, rateLimit, adminOnly, h.User.ListUsers)
			users.GET("/:userId", auth, rateLimit, adminOnly, h.User.GetUser)
			users.PATCH("/:userId", auth, rateLimit, adminOnly, h.User.UpdateUser)
			users.DELETE("/:userId", auth, rateLimit, adminOnly, h.User.DeactivateUser)
		}

		products := v1.Group("/products", auth, rateLimit)
		{
			products.GET("", h.Product.ListProducts)
			products.GET("/:productId", h.Product.GetProduct)
			products.POST("", adminOnly, h.Product.CreateProduct)
			products.PATCH("/:productId", adminOnly, h.Product.UpdateProduct)
			products.DELETE("/:productId", adminOnly, h.Product.DeleteProduct)
		}

		cart := v1.Group("/cart", auth, rateLimit)
		{
			cart.POST("", h.Cart.AddItem)
			cart.GET("", h.Cart.GetCart)
			cart.PATCH("/:cartId/item/:productId", h.Cart.UpdateItem)
			cart.DELETE("/:cartId/item/:productId", h.Cart.RemoveItem)
			cart.DELETE("/:cartId/clear", h.Cart.ClearCart)
		}

		sales := v1.Group("/sales", auth, rateLimit)
		{
			sales.POST("", middleware.Idempotency(idempotencyRepo), h.Sale.Checkout)
			sales.GET("", h.Sale.ListSales)
			sales.GET("/:saleId", h.Sale.GetSale)
			sales.POST("/:saleId/print", h.Sale.PrintReceipt)
			sales.GET("/printer/status", h.Sale.PrinterStatus)
		}
	}

	return router
}
