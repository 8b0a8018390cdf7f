package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportEntryModel represents the database model for sensor report entries
type ReportEntryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PartnerShipmentID string    `gorm:"type:varchar(64);not null;index:idx_entries_partner_ts"`
	GatewayIMEI       string    `gorm:"type:varchar(32);not null;index"`
	Timestamp         time.Time `gorm:"type:timestamptz;not null;index:idx_entries_partner_ts"`

	Latitude  *float64 `gorm:"type:decimal(10,6)"`
	Longitude *float64 `gorm:"type:decimal(10,6)"`

	TemperatureC      *float64 `gorm:"type:decimal(7,2)"`
	TemperatureF      *float64 `gorm:"type:decimal(7,2)"`
	Humidity          *float64 `gorm:"type:decimal(7,2)"`
	Light             *float64 `gorm:"type:decimal(10,2)"`
	Shock             *float64 `gorm:"type:decimal(7,2)"`
	Tilt              *float64 `gorm:"type:decimal(7,2)"`
	Battery           *float64 `gorm:"type:decimal(5,2)"`
	Pressure          *float64 `gorm:"type:decimal(10,2)"`
	ProbeTemperatureC *float64 `gorm:"type:decimal(7,2)"`
	ProbeTemperatureF *float64 `gorm:"type:decimal(7,2)"`

	CreatedAt time.Time `gorm:"not null"`
}

func (ReportEntryModel) TableName() string {
	return "report_entries"
}

// AlertModel represents the database model for alerts
type AlertModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PartnerShipmentID string     `gorm:"type:varchar(64);not null;index"`
	ParameterType     string     `gorm:"type:varchar(32);not null"`
	AlertType         string     `gorm:"type:varchar(32);not null"`
	ReportTimestamp   time.Time  `gorm:"type:timestamptz;not null"`
	CreateDate        time.Time  `gorm:"type:timestamptz;not null;index"`
	RecoveredAlertID  *uuid.UUID `gorm:"type:uuid;index"`
}

func (AlertModel) TableName() string {
	return "alerts"
}
