package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/config"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/handlers"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(middleware.MaxDecompressedBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade, facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade, cfg.WebhookToken, logger)
	proposalHandler := handlers.NewProposalHandler(facade)
	changeRequestHandler := handlers.NewChangeRequestHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/webhooks/pix", paymentHandler.Webhook)
	api.GET("/providers/:id/services", catalogHandler.List)
	api.GET("/providers/:id/reviews", catalogHandler.Reviews)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	private := api.Group("")
	private.Use(middleware.AuthRequired(facade))

	orders := private.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	orders.POST("/:id/pay", orderHandler.Pay)
	orders.POST("/:id/pix", paymentHandler.CreateCharge)
	orders.GET("/:id/proposals", proposalHandler.List)
	orders.POST("/:id/proposals", proposalHandler.Create)
	orders.GET("/:id/change-requests", changeRequestHandler.List)
	orders.POST("/:id/change-requests", changeRequestHandler.Create)

	private.POST("/proposals/:id/accept", proposalHandler.Accept)
	private.POST("/proposals/:id/accept-and-pay", proposalHandler.AcceptAndPay)
	private.POST("/change-requests/:id/resolve", changeRequestHandler.Resolve)
	private.POST("/reviews", reviewHandler.Create)
	private.DELETE("/reviews/:id", reviewHandler.Delete)
	private.GET("/notifications", notificationHandler.List)
	private.POST("/notifications/read", notificationHandler.MarkRead)
	private.DELETE("/notifications/:id", notificationHandler.Delete)

	provider := private.Group("")
	provider.Use(middleware.RequireProvider())
	provider.POST("/services", catalogHandler.Create)
	provider.GET("/wallet", walletHandler.Summary)
	provider.POST("/wallet/withdraw", walletHandler.Withdraw)
	provider.GET("/wallet/withdrawals", walletHandler.Withdrawals)
	provider.GET("/wallet/payout-info", walletHandler.PayoutInfo)
	provider.PUT("/wallet/payout-info", walletHandler.SavePayoutInfo)

	return engine
}
