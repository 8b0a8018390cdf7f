package shipment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for shipment storage.
type Repository interface {
	Create(ctx context.Context, s *Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	GetByPartnerID(ctx context.Context, partnerID string) (*Shipment, error)
	Update(ctx context.Context, s *Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Shipment, int64, error)

	// GetActiveByGatewayIMEI resolves the enroute shipment a reporting
	// tracker is attached to. Used by the ingestion alert engine.
	GetActiveByGatewayIMEI(ctx context.Context, imei string) (*Shipment, error)

	SetHadAlert(ctx context.Context, id uuid.UUID, hadAlert bool) error
}
