package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel represents the database model for items
type ItemModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name           string     `gorm:"type:varchar(255);not null"`
	ItemType       string     `gorm:"type:varchar(64)"`
	ProductID      *uuid.UUID `gorm:"type:uuid;index"`
	Units          int        `gorm:"type:integer;default:1;not null"`
	GrossWeight    *float64   `gorm:"type:decimal(10,2)"`
	Value          *float64   `gorm:"type:decimal(12,2)"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

func (ItemModel) TableName() string {
	return "items"
}

// ProductModel represents the database model for products
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null;index"`
	Description    string    `gorm:"type:text"`
	Value          *float64  `gorm:"type:decimal(12,2)"`
	GrossWeight    *float64  `gorm:"type:decimal(10,2)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (ProductModel) TableName() string {
	return "products"
}

// GatewayModel represents the database model for tracker gateways
type GatewayModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	IMEI           string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name           string     `gorm:"type:varchar(255)"`
	GatewayType    string     `gorm:"type:varchar(64)"`
	Status         string     `gorm:"type:varchar(32);not null;default:'available'"`
	LastReportAt   *time.Time `gorm:"type:timestamptz"`
	BatteryLevel   *float64   `gorm:"type:decimal(5,2)"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

func (GatewayModel) TableName() string {
	return "gateways"
}

// SensorModel represents the database model for sensors
type SensorModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255)"`
	SensorType     string    `gorm:"type:varchar(64)"`
	GatewayID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	Gateway *GatewayModel `gorm:"foreignKey:GatewayID"`
}

func (SensorModel) TableName() string {
	return "sensors"
}
