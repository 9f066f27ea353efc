package main

import (
	"fmt"
	"net/http"
	"os"

	"moneymap/internal/config"
	"moneymap/internal/database"
	"moneymap/internal/handlers"
	"moneymap/internal/logger"
	"moneymap/internal/middleware"
	"moneymap/internal/services"
	"moneymap/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "moneymap/internal/docs" // Import swagger docs
)

// @title           MoneyMap API
// @version         1.0
// @description     MoneyMap is a personal finance tracker that lets users record income and expense transactions and long-horizon investments, and view aggregated spending charts.

// @host      localhost:3000
// @BasePath  /

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	recordService := services.NewFinancialRecordService(db)
	investmentService := services.NewInvestmentService(db)

	// Initialize handlers
	recordHandler := handlers.NewFinancialRecordHandler(recordService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)

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

	// Identity verification hook. Pass-through unless JWT_SECRET is set.
	verified := router.Group("/")
	verified.Use(middleware.VerifyIdentity(appConfig.JWTSecret))

	// Financial record routes
	records := verified.Group("/financial-records")
	records.GET("/getAllByUserID/:userId", recordHandler.GetAllByUserID)
	records.GET("/getByUserAndMonth/:userId", recordHandler.GetByUserAndMonth)
	records.POST("", recordHandler.Create)
	records.PUT("/:id", recordHandler.Update)
	records.DELETE("/:id", recordHandler.Delete)

	// Investment routes
	investments := verified.Group("/investments")
	investments.GET("/getAllByUserID/:userId", investmentHandler.GetAllByUserID)
	investments.GET("/getByUserAndDateRange/:userId", investmentHandler.GetByUserAndDateRange)
	investments.POST("", investmentHandler.Create)
	investments.PUT("/:id", investmentHandler.Update)
	investments.DELETE("/:id", investmentHandler.Delete)

	log.Infof("Starting MoneyMap backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
