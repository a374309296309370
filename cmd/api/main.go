package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/Danskers/Finances-API/internal/config"
	"github.com/Danskers/Finances-API/internal/database"
	"github.com/Danskers/Finances-API/internal/handlers"
	"github.com/Danskers/Finances-API/internal/logger"
	"github.com/Danskers/Finances-API/internal/middleware"
	"github.com/Danskers/Finances-API/internal/services"
	"github.com/Danskers/Finances-API/internal/storage"
	"github.com/Danskers/Finances-API/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Danskers/Finances-API/internal/docs" // Import swagger docs
)

// @title           Finances API
// @version         1.0
// @description     Personal finance tracker: accounts, income/expense/debt transactions, monthly spending limits, and receipt uploads.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. A session cookie named access_token works too.

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

	// Register custom binding validators
	validator.Register()

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

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db, accountService)
	limitService := services.NewLimitService(db)

	// Object storage client for receipt uploads
	store := storage.NewSupabaseClient(appConfig.SupabaseURL, appConfig.SupabaseKey, nil)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(accountService, transactionService, limitService)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(accountService, transactionService, store)
	limitHandler := handlers.NewLimitHandler(limitService)
	historyHandler := handlers.NewHistoryHandler(transactionService, limitService)
	uploadHandler := handlers.NewUploadHandler(store)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.GET("/register", authHandler.RegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.SessionRequired(userService))

	protected.GET("/dashboard", dashboardHandler.Dashboard)

	protected.GET("/cuentas", accountHandler.List)
	protected.POST("/cuentas", accountHandler.Create)
	protected.POST("/cuentas/editar/:id", accountHandler.Rename)
	protected.POST("/cuentas/eliminar/:id", accountHandler.Delete)

	protected.GET("/transacciones", transactionHandler.List)
	protected.POST("/transacciones", transactionHandler.Create)
	protected.POST("/transaccion/eliminar/:id", transactionHandler.Delete)

	protected.POST("/limite", limitHandler.Set)
	protected.GET("/historial", historyHandler.Month)

	protected.POST("/uploads/upload-factura", uploadHandler.UploadReceipt)

	log.Infof("Starting finances server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
