package custodian

import (
	"time"

	"github.com/google/uuid"
)

// CustodyType is the display classification of a custody event.
type CustodyType string

const (
	CustodyCurrent CustodyType = "Current"
	CustodyFirst   CustodyType = "First"
	CustodyLast    CustodyType = "Last"
	CustodyNA      CustodyType = "NA"
)

// Custodian represents a party that can hold custody of a shipment.
type Custodian struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Abbreviation   string
	CustodianType  string
	ContactID      *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact holds the address book record behind a custodian. The backend is
// expected to keep exactly one contact per custodian; lookups here are
// multi-valued with first-match so a broken invariant degrades instead of
// erroring.
type Contact struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Address1       string
	Address2       string
	City           string
	State          string
	Country        string
	PostalCode     string
	Phone          string
	Email          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Custody links a custodian to a shipment for a time window.
type Custody struct {
	ID          uuid.UUID
	ShipmentID  uuid.UUID
	CustodianID uuid.UUID

	FirstCustody      bool
	LastCustody       bool
	HasCurrentCustody bool

	// LoadOrder is the ordinal position in the custody chain. Zero means
	// not yet assigned; assignment never overwrites a non-zero value.
	LoadOrder int

	StartOfCustody *time.Time
	EndOfCustody   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Classify returns the display classification of a custody event.
// Current custody wins display emphasis over chain position.
func (c *Custody) Classify() CustodyType {
	switch {
	case c.HasCurrentCustody:
		return CustodyCurrent
	case c.FirstCustody:
		return CustodyFirst
	case c.LastCustody:
		return CustodyLast
	default:
		return CustodyNA
	}
}
