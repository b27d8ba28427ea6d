package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/api/handlers"
	"github.com/pizzariapopovici/orderapi/internal/api/middleware"
	"github.com/pizzariapopovici/orderapi/internal/backend"
	"github.com/pizzariapopovici/orderapi/internal/checkout"
	"github.com/pizzariapopovici/orderapi/internal/config"
	"github.com/pizzariapopovici/orderapi/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	repos *repository.Repositories,
	be *backend.Client,
	checkoutSvc *checkout.Service,
	sessions *checkout.Store,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Operator authentication
		auth := v1.Group("/auth")
		{
			auth.POST("/login", handlers.HandleLogin(repos, logger))
			auth.POST("/logout", handlers.HandleLogout(repos, logger))
		}

		// Customer ordering routes (session id via X-Session-ID header)
		v1.POST("/session", handlers.HandleStartSession(checkoutSvc, sessions, logger))
		v1.GET("/menu", handlers.HandleMenu(checkoutSvc, sessions))
		v1.GET("/cart", handlers.HandleCartView(checkoutSvc, sessions))
		v1.POST("/cart/items/:id", handlers.HandleCartAdd(checkoutSvc, sessions))
		v1.DELETE("/cart/items/:id", handlers.HandleCartRemove(checkoutSvc, sessions))
		v1.DELETE("/cart/lines/:id", handlers.HandleCartRemoveLine(checkoutSvc, sessions))
		v1.PUT("/cart/payment-method", handlers.HandleSelectPayment(checkoutSvc, sessions))
		v1.POST("/checkout/resolve", handlers.HandleResolveCustomer(checkoutSvc, sessions, logger))
		v1.POST("/checkout/profile", handlers.HandleCompleteProfile(checkoutSvc, sessions, logger))
		v1.POST("/checkout/cancel", handlers.HandleCancelCheckout(checkoutSvc, sessions))
		v1.POST("/checkout/order", handlers.HandlePlaceOrder(checkoutSvc, sessions, logger))
		v1.GET("/checkout/status", handlers.HandleCheckoutStatus(checkoutSvc, sessions))

		// Management console routes (require operator authentication)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(repos, logger))
		{
			admin.GET("/items", handlers.HandleListItems(be, logger))
			admin.POST("/items", handlers.HandleCreateItem(be, logger))
			admin.PUT("/items/:id", handlers.HandleUpdateItem(be, logger))
			admin.DELETE("/items/:id", handlers.HandleDeleteItem(be, logger))

			admin.GET("/item-sizes", handlers.HandleListItemSizes(be, logger))
			admin.POST("/item-sizes", handlers.HandleCreateItemSize(be, logger))
			admin.PUT("/item-sizes/:id", handlers.HandleUpdateItemSize(be, logger))
			admin.DELETE("/item-sizes/:id", handlers.HandleDeleteItemSize(be, logger))

			admin.GET("/payment-methods", handlers.HandleListPaymentMethods(be, logger))
			admin.POST("/payment-methods", handlers.HandleCreatePaymentMethod(be, logger))
			admin.PUT("/payment-methods/:id", handlers.HandleUpdatePaymentMethod(be, logger))
			admin.DELETE("/payment-methods/:id", handlers.HandleDeletePaymentMethod(be, logger))

			admin.GET("/users", handlers.HandleListUsers(be, logger))
			admin.GET("/users/:id", handlers.HandleGetUser(be, logger))
			admin.POST("/users", handlers.HandleCreateUser(be, logger))
			admin.PUT("/users/:id", handlers.HandleUpdateUser(be, logger))
			admin.DELETE("/users/:id", handlers.HandleDeleteUser(be, logger))

			admin.GET("/orders", handlers.HandleListOrders(be, logger))
			admin.GET("/orders/:id", handlers.HandleGetOrder(be, logger))
			admin.PUT("/orders/:id", handlers.HandleUpdateOrder(be, logger))
			admin.DELETE("/orders/:id", handlers.HandleDeleteOrder(be, logger))

			admin.GET("/dashboard/stats", handlers.HandleDashboardStats(be, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
