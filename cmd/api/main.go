package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"carteira/internal/config"
	"carteira/internal/database"
	"carteira/internal/handlers"
	"carteira/internal/logger"
	"carteira/internal/middleware"
	"carteira/internal/pricesync"
	"carteira/internal/provider"
	"carteira/internal/services"
	"carteira/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "carteira/internal/docs" // Import swagger docs
)

// @title           Carteira API
// @version         1.0
// @description     Carteira tracks investment portfolios against target allocations, suggests how to split new contributions and keeps a history of executed rebalancings.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Static API key for the data pipeline endpoints.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Market data provider
	brapi := provider.NewBrapiClient(http.DefaultClient, appConfig.BrapiBaseURL, appConfig.BrapiToken)

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	portfolioService := services.NewPortfolioService(db)
	assetService := services.NewAssetService(db)
	rebalanceService := services.NewRebalanceService(db)
	contributionService := services.NewContributionService(db)
	priceService := services.NewPriceService(db, brapi, appConfig.QuoteCacheTTL)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, auditService)
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	rebalanceHandler := handlers.NewRebalanceHandler(rebalanceService, auditService)
	contributionHandler := handlers.NewContributionHandler(contributionService, auditService)
	priceHandler := handlers.NewPriceHandler(priceService)

	// Background price refresh
	syncer := pricesync.New(priceService, appConfig.PriceRefreshInterval)
	syncer.Start(context.Background())
	defer syncer.Stop()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Pipeline routes (X-API-Key)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.POST("/prices/refresh", priceHandler.PipelineRefresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Asset search
	protected.GET("/assets/search", priceHandler.SearchAssets)

	// Portfolio routes
	portfolios := protected.Group("/portfolios")
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("", portfolioHandler.GetPortfolios)
	portfolios.GET("/:id", portfolioHandler.GetPortfolio)
	portfolios.PUT("/:id", portfolioHandler.UpdatePortfolio)
	portfolios.DELETE("/:id", portfolioHandler.DeletePortfolio)
	portfolios.PUT("/:id/allocation", portfolioHandler.SetAllocation)

	// Holding routes
	portfolios.POST("/:id/assets", assetHandler.AddAsset)
	portfolios.PUT("/:id/assets/:assetId", assetHandler.UpdateAsset)
	portfolios.DELETE("/:id/assets/:assetId", assetHandler.DeleteAsset)
	portfolios.PUT("/:id/assets/:assetId/rating", assetHandler.SetRating)

	// Rebalancing routes
	portfolios.GET("/:id/rebalance", rebalanceHandler.GetPlan)
	portfolios.GET("/:id/rebalance/assets", rebalanceHandler.GetAssetPlan)
	portfolios.POST("/:id/rebalance", rebalanceHandler.Execute)
	portfolios.GET("/:id/rebalance/history", rebalanceHandler.GetHistory)

	// Contribution routes
	portfolios.POST("/:id/contributions/preview", contributionHandler.PreviewContribution)
	portfolios.POST("/:id/contributions", contributionHandler.ConfirmContribution)
	portfolios.GET("/:id/contributions", contributionHandler.GetContributions)

	// Price refresh
	portfolios.POST("/:id/prices/refresh", priceHandler.RefreshPortfolio)

	// Serve until interrupted so the price syncer shuts down cleanly
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Carteira backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		errCh <- router.Run(":" + appConfig.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Infof("Received %s, shutting down", sig)
		return nil
	}
}
