package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"quotation-service/internal/config"
	"quotation-service/internal/database"
	"quotation-service/internal/events"
	"quotation-service/internal/extraction"
	"quotation-service/internal/handlers"
	"quotation-service/internal/middleware"
	"quotation-service/internal/repository"
	"quotation-service/internal/services"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("✓ Connected to database")

	// Run automated database migrations (schema + company seed)
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Initialize NATS events publisher (non-blocking)
	go func() {
		if err := events.InitPublisher(logger); err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (events won't be published)", err)
		}
	}()

	// Initialize Redis client (optional - graceful degradation if Redis unavailable)
	redisClient := initRedis(cfg.RedisURL)

	// Initialize repository
	repo := repository.NewQuotationRepository(db, redisClient)

	// Initialize the quotation computation engine
	engine := services.NewEngine(repo, logger, cfg.StandardGSTRate)

	// Initialize document extractor (optional)
	extractor, err := extraction.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		log.Printf("WARNING: Failed to initialize document extractor: %v (extraction disabled)", err)
	}

	// Initialize handlers
	quotationHandler := handlers.NewQuotationHandler(engine, repo, logger)
	customerHandler := handlers.NewCustomerHandler(repo)
	companyHandler := handlers.NewCompanyHandler(repo)
	exportHandler := handlers.NewExportHandler(repo, logger)
	extractionHandler := handlers.NewExtractionHandler(extractor, logger)

	// Setup router
	router := setupRouter(db, quotationHandler, customerHandler, companyHandler, exportHandler, extractionHandler)

	// Start server
	log.Printf("Quotation Service starting on port %s (env: %s)", cfg.Port, cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initRedis connects to Redis when configured; the service runs
// without caching otherwise.
func initRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("REDIS_URL not configured, caching disabled")
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to parse Redis URL: %v", err)
		log.Println("Continuing without Redis caching...")
		return nil
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		log.Println("Continuing without Redis caching...")
		return nil
	}

	log.Println("✓ Connected to Redis for caching")
	return client
}

// setupRouter configures the HTTP router
func setupRouter(
	db *gorm.DB,
	quotationHandler *handlers.QuotationHandler,
	customerHandler *handlers.CustomerHandler,
	companyHandler *handlers.CompanyHandler,
	exportHandler *handlers.ExportHandler,
	extractionHandler *handlers.ExtractionHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	// Health checks
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "quotation-service",
		})
	})

	// Liveness probe - simple check that the service is running
	router.GET("/livez", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe - check that DB is accessible
	router.GET("/readyz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "error", "message": "database not available"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "error", "message": "database ping failed"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		company := v1.Group("/company")
		{
			company.GET("", companyHandler.GetCompany)
			company.PUT("", companyHandler.UpdateCompany)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", customerHandler.ListCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.POST("", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		quotations := v1.Group("/quotations")
		{
			quotations.GET("", quotationHandler.ListQuotations)
			quotations.POST("", quotationHandler.CreateQuotation)
			quotations.GET("/export", exportHandler.ExportQuotations)
			quotations.POST("/extract", extractionHandler.ExtractQuotation)
			quotations.GET("/:id", quotationHandler.GetQuotation)
			quotations.DELETE("/:id", quotationHandler.DeleteQuotation)
		}
	}

	return router
}
