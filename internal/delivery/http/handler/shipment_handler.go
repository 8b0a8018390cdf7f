package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	custodianUsecase "shipment-dashboard/internal/usecase/custodian"
	"shipment-dashboard/internal/usecase/report"
	"shipment-dashboard/internal/usecase/shipment"
	"shipment-dashboard/pkg/utils"
)

// LiveFeed upgrades a request to a websocket stream of report entries
// for one shipment.
type LiveFeed interface {
	ServeShipment(c *gin.Context, partnerID string)
}

type ShipmentHandler struct {
	service *shipment.Service
	reports *report.Service
	live    LiveFeed
}

func NewShipmentHandler(service *shipment.Service, reports *report.Service, live LiveFeed) *ShipmentHandler {
	return &ShipmentHandler{service: service, reports: reports, live: live}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.GET("", h.ListShipments)
		shipments.POST("", h.CreateShipment)
		shipments.GET("/:id", h.GetShipment)
		shipments.PUT("/:id", h.UpdateShipment)
		shipments.DELETE("/:id", h.DeleteShipment)

		shipments.GET("/:id/custodies", h.GetCustodies)
		shipments.POST("/:id/custodies", h.AddCustody)

		shipments.GET("/:id/overview", h.GetOverview)
		shipments.GET("/:id/alerts", h.GetAlerts)
		shipments.GET("/:id/alerts/export", h.ExportAlerts)
		shipments.GET("/:id/live", h.Live)
	}
}

func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req shipment.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Create(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shipment created successfully", row)
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", row)
}

func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req shipment.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment updated successfully", row)
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment deleted successfully", nil)
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req shipment.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ShipmentHandler) GetCustodies(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	chain, err := h.service.GetCustodies(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", chain)
}

func (h *ShipmentHandler) AddCustody(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req custodianUsecase.AddCustodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	chain, err := h.service.AddCustody(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Custody recorded successfully", chain)
}

func (h *ShipmentHandler) GetOverview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	overview, err := h.reports.GetOverview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", overview)
}

func (h *ShipmentHandler) GetAlerts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.reports.GetAlerts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

// ExportAlerts streams the alerts table as a CSV attachment.
func (h *ShipmentHandler) ExportAlerts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	filename, content, err := h.reports.ExportAlerts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

// Live subscribes the client to the shipment's realtime entry feed.
func (h *ShipmentHandler) Live(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.live.ServeShipment(c, row.PartnerShipmentID)
}
