package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Item is a shippable unit referenced by shipments.
type Item struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	ItemType       string
	ProductID      *uuid.UUID
	Units          int
	GrossWeight    *float64
	Value          *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a catalog record items are instantiated from.
type Product struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Description    string
	Value          *float64
	GrossWeight    *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GatewayStatus mirrors the tracker fleet states shown in the inventory
// panel.
type GatewayStatus string

const (
	GatewayAvailable GatewayStatus = "available"
	GatewayAssigned  GatewayStatus = "assigned"
	GatewayInTransit GatewayStatus = "in_transit"
	GatewayRetired   GatewayStatus = "retired"
)

// Gateway is a physical tracker device reporting sensor entries.
type Gateway struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	IMEI           string
	Name           string
	GatewayType    string
	Status         GatewayStatus
	LastReportAt   *time.Time
	BatteryLevel   *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sensor is a measurement channel belonging to a gateway.
type Sensor struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	SensorType     string
	GatewayID      uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}
