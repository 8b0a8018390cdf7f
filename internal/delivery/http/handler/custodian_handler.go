package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-dashboard/internal/usecase/custodian"
	"shipment-dashboard/pkg/utils"
)

type CustodianHandler struct {
	service *custodian.Service
}

func NewCustodianHandler(service *custodian.Service) *CustodianHandler {
	return &CustodianHandler{service: service}
}

func (h *CustodianHandler) RegisterRoutes(router *gin.RouterGroup) {
	custodians := router.Group("/custodians")
	{
		custodians.GET("", h.ListCustodians)
		custodians.POST("", h.CreateCustodian)
		custodians.GET("/:id", h.GetCustodian)
		custodians.PUT("/:id", h.UpdateCustodian)
		custodians.DELETE("/:id", h.DeleteCustodian)
	}
}

func (h *CustodianHandler) CreateCustodian(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req custodian.CreateCustodianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Create(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Custodian created successfully", row)
}

func (h *CustodianHandler) GetCustodian(c *gin.Context) {
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

func (h *CustodianHandler) UpdateCustodian(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req custodian.UpdateCustodianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Custodian updated successfully", row)
}

func (h *CustodianHandler) DeleteCustodian(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Custodian deleted successfully", nil)
}

func (h *CustodianHandler) ListCustodians(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	rows, err := h.service.List(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}
