package models

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentModel represents the database model for shipments
type ShipmentModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Status            string    `gorm:"type:varchar(32);not null;default:'Planned';index"`
	PartnerShipmentID string    `gorm:"type:varchar(64);uniqueIndex"`
	Origin            string    `gorm:"type:varchar(255)"`
	Destination       string    `gorm:"type:varchar(255)"`

	EstimatedDeparture *time.Time `gorm:"type:timestamptz;index"`
	EstimatedArrival   *time.Time `gorm:"type:timestamptz"`
	ActualDeparture    *time.Time `gorm:"type:timestamptz"`
	ActualArrival      *time.Time `gorm:"type:timestamptz"`

	HadAlert bool `gorm:"default:false;not null"`

	TempMinWarning       *float64 `gorm:"type:decimal(7,2)"`
	TempMaxWarning       *float64 `gorm:"type:decimal(7,2)"`
	TempMinExcursion     *float64 `gorm:"type:decimal(7,2)"`
	TempMaxExcursion     *float64 `gorm:"type:decimal(7,2)"`
	HumidityMinWarning   *float64 `gorm:"type:decimal(7,2)"`
	HumidityMaxWarning   *float64 `gorm:"type:decimal(7,2)"`
	HumidityMinExcursion *float64 `gorm:"type:decimal(7,2)"`
	HumidityMaxExcursion *float64 `gorm:"type:decimal(7,2)"`
	ShockMaxWarning      *float64 `gorm:"type:decimal(7,2)"`
	ShockMaxExcursion    *float64 `gorm:"type:decimal(7,2)"`
	LightMaxWarning      *float64 `gorm:"type:decimal(10,2)"`
	LightMaxExcursion    *float64 `gorm:"type:decimal(10,2)"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Items    []ShipmentItemModel    `gorm:"foreignKey:ShipmentID"`
	Gateways []ShipmentGatewayModel `gorm:"foreignKey:ShipmentID"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}

// ShipmentItemModel joins shipments to the items they carry
type ShipmentItemModel struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (ShipmentItemModel) TableName() string {
	return "shipment_items"
}

// ShipmentGatewayModel joins shipments to tracker IMEIs
type ShipmentGatewayModel struct {
	ShipmentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	GatewayIMEI string    `gorm:"type:varchar(32);primaryKey;index"`
}

func (ShipmentGatewayModel) TableName() string {
	return "shipment_gateways"
}
