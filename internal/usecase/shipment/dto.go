package shipment

import (
	"time"

	"github.com/google/uuid"

	domainShipment "shipment-dashboard/internal/domain/shipment"
	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
)

// BoundsRequest carries one metric's alerting thresholds.
type BoundsRequest struct {
	MinWarning   *float64 `json:"min_warning"`
	MaxWarning   *float64 `json:"max_warning"`
	MinExcursion *float64 `json:"min_excursion"`
	MaxExcursion *float64 `json:"max_excursion"`
}

// CreateShipmentRequest is the shipment form payload.
type CreateShipmentRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=255"`
	Status            string `json:"status" validate:"required"`
	PartnerShipmentID string `json:"partner_shipment_id" validate:"required,max=128"`

	EstimatedDeparture *time.Time `json:"estimated_time_of_departure"`
	EstimatedArrival   *time.Time `json:"estimated_time_of_arrival"`

	ItemIDs      []uuid.UUID `json:"item_ids"`
	GatewayIMEIs []string    `json:"gateway_imeis"`

	Temperature *BoundsRequest `json:"temperature"`
	Humidity    *BoundsRequest `json:"humidity"`
	Shock       *BoundsRequest `json:"shock"`
	Light       *BoundsRequest `json:"light"`
}

// UpdateShipmentRequest additionally carries the actual leg timestamps.
type UpdateShipmentRequest struct {
	CreateShipmentRequest

	ActualDeparture *time.Time `json:"actual_time_of_departure"`
	ActualArrival   *time.Time `json:"actual_time_of_arrival"`
}

// ActiveAlert is one unresolved alert badge on a shipment row.
type ActiveAlert struct {
	ID            uuid.UUID `json:"id"`
	ParameterType string    `json:"parameter_type"`
	AlertType     string    `json:"alert_type"`
	Severity      string    `json:"severity"`
	CreateDate    time.Time `json:"create_date"`
}

// ShipmentRow is the denormalized row the shipment table renders. Origin,
// destination, item names and tracker strings are resolved server-side so
// the front-end only formats.
type ShipmentRow struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	Type              string    `json:"type"`
	PartnerShipmentID string    `json:"partner_shipment_id"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	EstimatedDeparture *time.Time `json:"estimated_time_of_departure"`
	EstimatedArrival   *time.Time `json:"estimated_time_of_arrival"`
	ActualDeparture    *time.Time `json:"actual_time_of_departure"`
	ActualArrival      *time.Time `json:"actual_time_of_arrival"`

	ItemNames string `json:"item_names"`
	Tracker   string `json:"tracker"`

	HadAlert bool          `json:"had_alert"`
	Alerts   []ActiveAlert `json:"alerts"`

	CreatedAt time.Time `json:"created_at"`
}

// ListRequest carries the table's filter and paging controls.
type ListRequest struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ListResponse wraps the formatted rows with paging metadata.
type ListResponse struct {
	Shipments  []*ShipmentRow `json:"shipments"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

func toBounds(b *BoundsRequest) domainShipment.MetricBounds {
	if b == nil {
		return domainShipment.MetricBounds{}
	}
	return domainShipment.MetricBounds{
		MinWarning:   b.MinWarning,
		MaxWarning:   b.MaxWarning,
		MinExcursion: b.MinExcursion,
		MaxExcursion: b.MaxExcursion,
	}
}

func toActiveAlert(a *domainTelemetry.Alert) ActiveAlert {
	return ActiveAlert{
		ID:            a.ID,
		ParameterType: string(a.ParameterType),
		AlertType:     a.AlertType,
		Severity:      a.Severity(),
		CreateDate:    a.CreateDate,
	}
}
