package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-dashboard/internal/config"
	"shipment-dashboard/internal/delivery/http/handler"
	"shipment-dashboard/internal/infrastructure/database/postgres"
	"shipment-dashboard/internal/logger"
	"shipment-dashboard/internal/middleware"
	"shipment-dashboard/internal/usecase/custodian"
	"shipment-dashboard/internal/usecase/inventory"
	"shipment-dashboard/internal/usecase/preference"
	"shipment-dashboard/internal/usecase/report"
	"shipment-dashboard/internal/usecase/shipment"
)

// Deps carries the long-lived components the HTTP layer needs beyond
// the database.
type Deps struct {
	Live    handler.LiveFeed
	Metrics handler.MetricsSource
}

func SetupRoutes(cfg *config.Config, db *postgres.DB, deps Deps) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security
	// headers, CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	custodianRepository := postgres.NewCustodianRepository(db)
	inventoryRepository := postgres.NewInventoryRepository(db)
	preferenceRepository := postgres.NewPreferenceRepository(db)
	shipmentRepository := postgres.NewShipmentRepository(db)
	telemetryRepository := postgres.NewTelemetryRepository(db)

	custodianService := custodian.NewService(custodianRepository)
	inventoryService := inventory.NewService(inventoryRepository)
	preferenceService := preference.NewService(preferenceRepository, cfg.Display)
	shipmentService := shipment.NewService(shipmentRepository, custodianRepository, inventoryRepository, telemetryRepository)
	reportService := report.NewService(shipmentRepository, telemetryRepository, preferenceService)

	custodianHandler := handler.NewCustodianHandler(custodianService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService, reportService, deps.Live)
	monitorHandler := handler.NewMonitorHandler(deps.Metrics)

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			custodianHandler.RegisterRoutes(protected)
			inventoryHandler.RegisterRoutes(protected)
			preferenceHandler.RegisterRoutes(protected)
			shipmentHandler.RegisterRoutes(protected)

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				preferenceHandler.RegisterAdminRoutes(admin)
				monitorHandler.RegisterRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
