package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"centavo/internal/config"
	"centavo/internal/cycle"
	"centavo/internal/database"
	"centavo/internal/handlers"
	"centavo/internal/logger"
	"centavo/internal/middleware"
	"centavo/internal/services"
	"centavo/internal/validator"
)

func main() {
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

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	profileService := services.NewProfileService(db, appConfig.DefaultCycleStartDay, appConfig.DefaultCurrencySym)
	transactionService := services.NewTransactionService(db, profileService, cycle.SystemClock)
	summaryService := services.NewSummaryService(transactionService, profileService, cycle.EsCO)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	profileHandler := handlers.NewProfileHandler(profileService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group, scoped to the user forwarded by the auth gateway
	v1 := router.Group("/api/v1")
	v1.Use(middleware.UserScope())

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/cycle", transactionHandler.GetCycleTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Profile routes
	v1.GET("/profile", profileHandler.GetProfile)
	v1.PUT("/profile", profileHandler.UpdateProfile)

	// Summary routes
	v1.GET("/summary/cycle", summaryHandler.GetCycleSummary)

	log.Infof("Starting Centavo backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
