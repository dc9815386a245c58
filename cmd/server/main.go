package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/docs"
	"github.com/cnsllgllr/qrmaster/internal/config"
	"github.com/cnsllgllr/qrmaster/internal/database"
	"github.com/cnsllgllr/qrmaster/internal/handler"
	"github.com/cnsllgllr/qrmaster/internal/middleware"
	"github.com/cnsllgllr/qrmaster/internal/repository"
	"github.com/cnsllgllr/qrmaster/internal/scheduler"
	"github.com/cnsllgllr/qrmaster/internal/service"
	"github.com/cnsllgllr/qrmaster/internal/storage"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
)

// @title QR Master Service API
// @version 1.0
// @description RESTful API for QR batch and report management

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "QR Master Service API"
	docs.SwaggerInfo.Description = "RESTful API for QR batch and report management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting QR Master Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize attachment storage
	store, err := storage.NewStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to initialize attachment storage")
	}

	// Initialize repositories
	batchRepo := repository.NewBatchRepository(db.DB)
	recordRepo := repository.NewRecordRepository(db.DB)

	// Initialize services
	batchService := service.NewBatchService(batchRepo, recordRepo, store, appLogger)
	recordService := service.NewRecordService(recordRepo, store, appLogger)
	exportService := service.NewExportService(recordRepo)

	// Start the orphan file sweeper
	cleanupScheduler := scheduler.NewCleanupScheduler(recordRepo, store, appLogger, cfg.Cleaner.CronExpression, cfg.Cleaner.MinAge)
	if err := cleanupScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start cleanup scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, cfg, batchService, recordService, exportService, store, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the sweeper before the server so no sweep races shutdown
	cleanupScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
