package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"shipment-dashboard/internal/usecase/inventory"
	appErrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

type InventoryHandler struct {
	service *inventory.Service
}

func NewInventoryHandler(service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/items")
	{
		items.GET("", h.ListItems)
		items.POST("", h.CreateItem)
		items.POST("/import", h.ImportItems)
		items.GET("/:id", h.GetItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}

	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	gateways := router.Group("/gateways")
	{
		gateways.GET("", h.ListGateways)
		gateways.POST("", h.CreateGateway)
		gateways.GET("/:id", h.GetGateway)
		gateways.PUT("/:id", h.UpdateGateway)
		gateways.DELETE("/:id", h.DeleteGateway)
	}

	sensors := router.Group("/sensors")
	{
		sensors.GET("", h.ListSensors)
		sensors.POST("", h.CreateSensor)
		sensors.GET("/:id", h.GetSensor)
		sensors.PUT("/:id", h.UpdateSensor)
		sensors.DELETE("/:id", h.DeleteSensor)
	}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req inventory.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Item created successfully", item)
}

// ImportItems accepts a multipart CSV upload and creates the rows it
// can parse, reporting per-line failures for the rest.
func (h *InventoryHandler) ImportItems(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	if header != nil && header.Filename != "" &&
		!strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		respondError(c, appErrors.ErrImportUnsupported)
		return
	}

	result, err := h.service.ImportItems(c.Request.Context(), orgID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import completed", result)
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", item)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req inventory.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item updated successfully", item)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item deleted successfully", nil)
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req inventory.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Product created successfully", product)
}

func (h *InventoryHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", product)
}

func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req inventory.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", product)
}

func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	products, err := h.service.ListProducts(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", products)
}

func (h *InventoryHandler) CreateGateway(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req inventory.CreateGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	gateway, err := h.service.CreateGateway(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Gateway created successfully", gateway)
}

func (h *InventoryHandler) GetGateway(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	gateway, err := h.service.GetGateway(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gateway)
}

func (h *InventoryHandler) UpdateGateway(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req inventory.UpdateGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	gateway, err := h.service.UpdateGateway(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Gateway updated successfully", gateway)
}

func (h *InventoryHandler) DeleteGateway(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteGateway(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Gateway deleted successfully", nil)
}

func (h *InventoryHandler) ListGateways(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	gateways, err := h.service.ListGateways(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gateways)
}

func (h *InventoryHandler) CreateSensor(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req inventory.CreateSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sensor, err := h.service.CreateSensor(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Sensor created successfully", sensor)
}

func (h *InventoryHandler) GetSensor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	sensor, err := h.service.GetSensor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", sensor)
}

func (h *InventoryHandler) UpdateSensor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req inventory.UpdateSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sensor, err := h.service.UpdateSensor(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sensor updated successfully", sensor)
}

func (h *InventoryHandler) DeleteSensor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSensor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sensor deleted successfully", nil)
}

func (h *InventoryHandler) ListSensors(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	sensors, err := h.service.ListSensors(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", sensors)
}
