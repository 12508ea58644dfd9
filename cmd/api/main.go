package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"figimap/internal/config"
	"figimap/internal/database"
	"figimap/internal/handlers"
	"figimap/internal/logger"
	"figimap/internal/middleware"
	"figimap/internal/services"
	"figimap/internal/validator"
)

// @title           figimap API
// @version         1.0
// @description     figimap turns free-text security descriptors and explicit identifiers into OpenFIGI mapping jobs.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

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
	if appConfig.LogLevel != "" {
		if err := logger.SetLevel(appConfig.LogLevel); err != nil {
			return err
		}
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	jobLogService := services.NewNopJobLogService()
	if dbConfig.Enabled() {
		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer func() {
			if err := dbManager.Close(); err != nil {
				log.Warnf("database close error: %v", err)
			}
		}()

		if err := dbManager.RunMigrations("migrations"); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		jobLogService = services.NewJobLogService(dbManager.DB())
	} else {
		log.Info("DB_DRIVER not set, job log disabled")
	}

	validator.Register()

	// Initialize handlers
	mappingHandler := handlers.NewMappingHandler(jobLogService, appConfig.JobsPerRequest)
	jobLogHandler := handlers.NewJobLogHandler(jobLogService)

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.APIKeyHeader)

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

	// API v1 group
	v1 := router.Group("/api/v1")

	mappingRoutes := v1.Group("/mapping")
	mappingRoutes.GET("/reference", mappingHandler.Reference)
	mappingRoutes.POST("/classify", mappingHandler.Classify)
	mappingRoutes.POST("/jobs", mappingHandler.BuildJobs)

	// Job log routes (admin API key)
	logs := mappingRoutes.Group("/logs")
	logs.Use(middleware.APIKeyAuth(appConfig.AdminAPIKey))
	logs.GET("", jobLogHandler.ListJobLogs)
	logs.GET("/:id", jobLogHandler.GetJobLog)

	log.Infof("Starting figimap server on port %s (max %d jobs per request)", appConfig.Port, appConfig.JobsPerRequest)
	return router.Run(":" + appConfig.Port)
}
