package inventory

import (
	"time"

	"github.com/google/uuid"

	domainInventory "shipment-dashboard/internal/domain/inventory"
)

type CreateItemRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	ItemType    string     `json:"item_type" validate:"omitempty,max=64"`
	ProductID   *uuid.UUID `json:"product_id"`
	Units       int        `json:"units" validate:"omitempty,min=0"`
	GrossWeight *float64   `json:"gross_weight" validate:"omitempty,min=0"`
	Value       *float64   `json:"value" validate:"omitempty,min=0"`
}

type UpdateItemRequest = CreateItemRequest

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	ItemType    string     `json:"item_type"`
	ProductID   *uuid.UUID `json:"product_id"`
	Units       int        `json:"units"`
	GrossWeight *float64   `json:"gross_weight"`
	Value       *float64   `json:"value"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"omitempty,max=1024"`
	Value       *float64 `json:"value" validate:"omitempty,min=0"`
	GrossWeight *float64 `json:"gross_weight" validate:"omitempty,min=0"`
}

type UpdateProductRequest = CreateProductRequest

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       *float64  `json:"value"`
	GrossWeight *float64  `json:"gross_weight"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateGatewayRequest struct {
	IMEI        string `json:"imei" validate:"required,min=8,max=32"`
	Name        string `json:"name" validate:"omitempty,max=255"`
	GatewayType string `json:"gateway_type" validate:"omitempty,max=64"`
	Status      string `json:"status" validate:"omitempty,oneof=available assigned in_transit retired"`
}

type UpdateGatewayRequest = CreateGatewayRequest

type GatewayResponse struct {
	ID           uuid.UUID  `json:"id"`
	IMEI         string     `json:"imei"`
	Name         string     `json:"name"`
	GatewayType  string     `json:"gateway_type"`
	Status       string     `json:"status"`
	LastReportAt *time.Time `json:"last_report_at"`
	BatteryLevel *float64   `json:"battery_level"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateSensorRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=255"`
	SensorType string    `json:"sensor_type" validate:"omitempty,max=64"`
	GatewayID  uuid.UUID `json:"gateway_id" validate:"required"`
}

type UpdateSensorRequest = CreateSensorRequest

type SensorResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SensorType string    `json:"sensor_type"`
	GatewayID  uuid.UUID `json:"gateway_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RowError reports one rejected line of a bulk import.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk item import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Rejected int        `json:"rejected"`
	Errors   []RowError `json:"errors"`
}

func ToItemResponse(i *domainInventory.Item) *ItemResponse {
	return &ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		ItemType:    i.ItemType,
		ProductID:   i.ProductID,
		Units:       i.Units,
		GrossWeight: i.GrossWeight,
		Value:       i.Value,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func ToProductResponse(p *domainInventory.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Value:       p.Value,
		GrossWeight: p.GrossWeight,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToGatewayResponse(g *domainInventory.Gateway) *GatewayResponse {
	return &GatewayResponse{
		ID:           g.ID,
		IMEI:         g.IMEI,
		Name:         g.Name,
		GatewayType:  g.GatewayType,
		Status:       string(g.Status),
		LastReportAt: g.LastReportAt,
		BatteryLevel: g.BatteryLevel,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func ToSensorResponse(s *domainInventory.Sensor) *SensorResponse {
	return &SensorResponse{
		ID:         s.ID,
		Name:       s.Name,
		SensorType: s.SensorType,
		GatewayID:  s.GatewayID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
