package custodian

import (
	"time"

	"github.com/google/uuid"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
)

// CreateCustodianRequest carries the custodian and its contact as one
// payload, the way the custodian form submits them.
type CreateCustodianRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=255"`
	Abbreviation  string `json:"abbreviation" validate:"omitempty,max=16"`
	CustodianType string `json:"custodian_type" validate:"omitempty,max=64"`

	Address1   string `json:"address1" validate:"omitempty,max=255"`
	Address2   string `json:"address2" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=128"`
	State      string `json:"state" validate:"omitempty,max=128"`
	Country    string `json:"country" validate:"omitempty,max=64"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=16"`
	Phone      string `json:"phone" validate:"omitempty,max=32"`
	Email      string `json:"email" validate:"omitempty,email"`
}

// UpdateCustodianRequest mirrors the create payload.
type UpdateCustodianRequest = CreateCustodianRequest

// CustodianRow is the joined display row the custodian table consumes.
type CustodianRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Abbreviation  string    `json:"abbreviation"`
	CustodianType string    `json:"custodian_type"`
	Location      string    `json:"location"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CustodyRow is one resolved custody-chain event.
type CustodyRow struct {
	ID          uuid.UUID  `json:"id"`
	ShipmentID  uuid.UUID  `json:"shipment_id"`
	CustodianID uuid.UUID  `json:"custodian_id"`
	LoadOrder   int        `json:"load_order"`
	CustodyType string     `json:"custody_type"`
	Start       *time.Time `json:"start_of_custody"`
	End         *time.Time `json:"end_of_custody"`
}

// AddCustodyRequest attaches a custodian to a shipment.
type AddCustodyRequest struct {
	CustodianID       uuid.UUID  `json:"custodian_id" validate:"required"`
	FirstCustody      bool       `json:"first_custody"`
	LastCustody       bool       `json:"last_custody"`
	HasCurrentCustody bool       `json:"has_current_custody"`
	StartOfCustody    *time.Time `json:"start_of_custody"`
	EndOfCustody      *time.Time `json:"end_of_custody"`
}

func toCustodianRow(cu *domainCustodian.Custodian, contact *domainCustodian.Contact) *CustodianRow {
	row := &CustodianRow{
		ID:            cu.ID,
		Name:          cu.Name,
		Abbreviation:  cu.Abbreviation,
		CustodianType: cu.CustodianType,
		Location:      FormatLocation(contact),
		CreatedAt:     cu.CreatedAt,
		UpdatedAt:     cu.UpdatedAt,
	}
	if contact != nil {
		row.Phone = contact.Phone
		row.Email = contact.Email
	}
	return row
}

func toCustodyRow(c *domainCustodian.Custody) *CustodyRow {
	return &CustodyRow{
		ID:          c.ID,
		ShipmentID:  c.ShipmentID,
		CustodianID: c.CustodianID,
		LoadOrder:   c.LoadOrder,
		CustodyType: string(c.Classify()),
		Start:       c.StartOfCustody,
		End:         c.EndOfCustody,
	}
}
