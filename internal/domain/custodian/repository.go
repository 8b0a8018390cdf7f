package custodian

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines storage access for custodians, contacts and custody
// records.
type Repository interface {
	CreateCustodian(ctx context.Context, c *Custodian) error
	GetCustodian(ctx context.Context, id uuid.UUID) (*Custodian, error)
	UpdateCustodian(ctx context.Context, c *Custodian) error
	DeleteCustodian(ctx context.Context, id uuid.UUID) error
	ListCustodians(ctx context.Context, orgID uuid.UUID) ([]*Custodian, error)

	CreateContact(ctx context.Context, c *Contact) error
	GetContact(ctx context.Context, id uuid.UUID) (*Contact, error)
	UpdateContact(ctx context.Context, c *Contact) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
	ListContacts(ctx context.Context, orgID uuid.UUID) ([]*Contact, error)

	CreateCustody(ctx context.Context, c *Custody) error
	UpdateCustody(ctx context.Context, c *Custody) error
	DeleteCustody(ctx context.Context, id uuid.UUID) error
	ListCustodiesByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*Custody, error)
	ListCustodiesByShipments(ctx context.Context, shipmentIDs []uuid.UUID) ([]*Custody, error)
	CountCustodiesByCustodian(ctx context.Context, custodianID uuid.UUID) (int64, error)
}
