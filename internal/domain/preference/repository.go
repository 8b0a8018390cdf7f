package preference

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines storage access for unit-of-measure records.
type Repository interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*UnitOfMeasure, error)

	// ReplaceForOrganization swaps an organization's full unit set in one
	// transaction. The admin panel always submits the complete set.
	ReplaceForOrganization(ctx context.Context, orgID uuid.UUID, units []*UnitOfMeasure) error
}
