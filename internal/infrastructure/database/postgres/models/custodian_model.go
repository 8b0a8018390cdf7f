package models

import (
	"time"

	"github.com/google/uuid"
)

// CustodianModel represents the database model for custodians
type CustodianModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name           string     `gorm:"type:varchar(255);not null;index"`
	Abbreviation   string     `gorm:"type:varchar(16)"`
	CustodianType  string     `gorm:"type:varchar(64)"`
	ContactID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`

	Contact *ContactModel `gorm:"foreignKey:ContactID"`
}

func (CustodianModel) TableName() string {
	return "custodians"
}

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Address1       string    `gorm:"type:varchar(255)"`
	Address2       string    `gorm:"type:varchar(255)"`
	City           string    `gorm:"type:varchar(128)"`
	State          string    `gorm:"type:varchar(128)"`
	Country        string    `gorm:"type:varchar(128)"`
	PostalCode     string    `gorm:"type:varchar(32)"`
	Phone          string    `gorm:"type:varchar(32)"`
	Email          string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (ContactModel) TableName() string {
	return "contacts"
}

// CustodyModel represents the database model for custody records
type CustodyModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShipmentID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustodianID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	FirstCustody      bool       `gorm:"default:false;not null"`
	LastCustody       bool       `gorm:"default:false;not null"`
	HasCurrentCustody bool       `gorm:"default:false;not null"`
	LoadOrder         int        `gorm:"type:integer;default:0;not null"`
	StartOfCustody    *time.Time `gorm:"type:timestamptz"`
	EndOfCustody      *time.Time `gorm:"type:timestamptz"`
	CreatedAt         time.Time  `gorm:"not null;index"`
	UpdatedAt         time.Time  `gorm:"not null"`

	Custodian *CustodianModel `gorm:"foreignKey:CustodianID"`
}

func (CustodyModel) TableName() string {
	return "custodies"
}
