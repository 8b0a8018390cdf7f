package models

import (
	"time"

	"github.com/google/uuid"
)

// UnitOfMeasureModel represents the database model for display units
type UnitOfMeasureModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitOfMeasureFor string    `gorm:"type:varchar(64);not null"`
	UnitOfMeasure    string    `gorm:"type:varchar(64);not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (UnitOfMeasureModel) TableName() string {
	return "units_of_measure"
}
