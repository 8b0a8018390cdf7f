package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-dashboard/internal/usecase/preference"
	"shipment-dashboard/pkg/utils"
)

type PreferenceHandler struct {
	service *preference.Service
}

func NewPreferenceHandler(service *preference.Service) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

// RegisterRoutes exposes the org-wide display preferences. Reads are
// open to any authenticated user; writes go through RegisterAdminRoutes.
func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("/display", h.GetDisplay)
	}
}

func (h *PreferenceHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/units", h.ListUnits)
		admin.PUT("/units", h.ReplaceUnits)
	}
}

func (h *PreferenceHandler) ListUnits(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	units, err := h.service.ListUnits(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", units)
}

// ReplaceUnits swaps the organization's unit-of-measure set for the one
// in the request body.
func (h *PreferenceHandler) ReplaceUnits(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req preference.ReplaceUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	units, err := h.service.ReplaceUnits(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Preferences updated successfully", units)
}

// GetDisplay returns the resolved display settings, defaults filled in
// where the organization has no record.
func (h *PreferenceHandler) GetDisplay(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	display := h.service.ResolveDisplay(c.Request.Context(), orgID)
	utils.SuccessResponse(c, http.StatusOK, "", preference.ToDisplayResponse(display))
}
