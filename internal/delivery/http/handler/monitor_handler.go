package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-dashboard/internal/ingestion"
	"shipment-dashboard/pkg/utils"
)

// MetricsSource exposes a point-in-time view of the ingestion pipeline.
type MetricsSource interface {
	Snapshot() ingestion.Metrics
}

// MonitorHandler serves operational endpoints for administrators.
type MonitorHandler struct {
	metrics MetricsSource
}

func NewMonitorHandler(metrics MetricsSource) *MonitorHandler {
	return &MonitorHandler{metrics: metrics}
}

func (h *MonitorHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/ingestion/metrics", h.GetIngestionMetrics)
	}
}

func (h *MonitorHandler) GetIngestionMetrics(c *gin.Context) {
	if h.metrics == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Ingestion pipeline is not running")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.metrics.Snapshot())
}
