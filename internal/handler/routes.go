package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cnsllgllr/qrmaster/internal/config"
	"github.com/cnsllgllr/qrmaster/internal/middleware"
	"github.com/cnsllgllr/qrmaster/internal/service"
	"github.com/cnsllgllr/qrmaster/internal/storage"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	batchService service.BatchService,
	recordService service.RecordService,
	exportService service.ExportService,
	store *storage.Store,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(&cfg.Auth, logger)
	batchHandler := NewBatchHandler(batchService, exportService, logger)
	recordHandler := NewRecordHandler(recordService, cfg.Upload.MaxSizeBytes, logger)
	uploadHandler := NewUploadHandler(store, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", HealthCheck)

	// Stored report files are public downloads
	router.GET("/uploads/:filename", uploadHandler.ServeFile)

	api := router.Group("/api")
	{
		// Login is the only unauthenticated API route and is rate limited per IP
		api.POST("/login", middleware.RateLimit(cfg.Auth.LoginRatePerMinute), authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired(cfg.Auth.JWTSecret))
		{
			// Batch routes
			folders := protected.Group("/folders")
			{
				folders.GET("", batchHandler.ListBatches)
				folders.POST("", batchHandler.CreateBatch)
				folders.DELETE("/:id", batchHandler.DeleteBatch)
				folders.GET("/:id/export", batchHandler.ExportBatch)
			}

			// Record routes
			qrs := protected.Group("/qrs")
			{
				qrs.GET("", recordHandler.ListRecords)
				qrs.POST("/batch", recordHandler.BulkCreate)
				qrs.POST("/bulk-delete", recordHandler.BulkDelete)
				qrs.GET("/:id", recordHandler.GetRecord)
				qrs.PUT("/:id", recordHandler.UpdateReport)
				qrs.DELETE("/:id/report", recordHandler.DeleteReport)
			}
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "QR Master Service",
	})
}
