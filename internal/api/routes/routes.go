package routes

import (
	"os"
	"path/filepath"

	"bill-reminder-backend/internal/api/handlers"
	"bill-reminder-backend/internal/api/middleware"
	"bill-reminder-backend/internal/config"
	"bill-reminder-backend/internal/repository"
	"bill-reminder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo, validator)
	reminderService := service.NewReminderService(reminderRepo, categoryRepo, validator)
	paymentService := service.NewPaymentService(paymentRepo, validator)
	duesService := service.NewDuesService(reminderRepo, paymentRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	duesHandler := handlers.NewDuesHandler(duesService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		// Category routes
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.GET("", reminderHandler.ListReminders)
			reminders.POST("", reminderHandler.CreateReminder)
			reminders.PUT("/:id", reminderHandler.UpdateReminder)
			reminders.DELETE("/:id", reminderHandler.DeleteReminder)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.ListPayments)
			payments.POST("", paymentHandler.CreatePayment)
			payments.GET("/check", paymentHandler.CheckPayments)
		}

		// Dues routes
		dues := api.Group("/dues")
		{
			dues.GET("/upcoming", duesHandler.GetUpcoming)
			dues.GET("/summary", duesHandler.GetSummary)
		}
	}

	// Serve the dashboard when the directory exists: every file and
	// subdirectory under it gets a route, so public/js/app.js is reachable
	// at /js/app.js
	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
			if entries, err := os.ReadDir(cfg.StaticDir); err == nil {
				for _, entry := range entries {
					target := filepath.Join(cfg.StaticDir, entry.Name())
					if entry.IsDir() {
						router.Static("/"+entry.Name(), target)
					} else {
						router.StaticFile("/"+entry.Name(), target)
					}
				}
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
