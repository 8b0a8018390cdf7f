package preference

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shipment-dashboard/internal/config"
	domainPreference "shipment-dashboard/internal/domain/preference"
	"shipment-dashboard/internal/logger"
	appErrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

// Service implements display preference use cases.
type Service struct {
	repo     domainPreference.Repository
	defaults config.DisplayConfig
}

func NewService(repo domainPreference.Repository, defaults config.DisplayConfig) *Service {
	return &Service{repo: repo, defaults: defaults}
}

func (s *Service) ListUnits(ctx context.Context, orgID uuid.UUID) ([]*UnitResponse, error) {
	units, err := s.repo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	responses := make([]*UnitResponse, len(units))
	for i, u := range units {
		responses[i] = ToUnitResponse(u)
	}
	return responses, nil
}

func (s *Service) ReplaceUnits(ctx context.Context, orgID uuid.UUID, req *ReplaceUnitsRequest) ([]*UnitResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	units := make([]*domainPreference.UnitOfMeasure, len(req.Units))
	for i, u := range req.Units {
		units[i] = &domainPreference.UnitOfMeasure{
			UnitOfMeasureFor: utils.SanitizeString(u.UnitOfMeasureFor),
			UnitOfMeasure:    utils.SanitizeString(u.UnitOfMeasure),
		}
	}

	if err := s.repo.ReplaceForOrganization(ctx, orgID, units); err != nil {
		return nil, err
	}

	logger.Info("Units of measure replaced",
		zap.String("organization_id", orgID.String()),
		zap.Int("count", len(units)),
	)

	return s.ListUnits(ctx, orgID)
}

// ResolveDisplay loads the organization's units and folds them over the
// configured defaults. Storage failures degrade to defaults so display
// formatting never blocks a page.
func (s *Service) ResolveDisplay(ctx context.Context, orgID uuid.UUID) *Display {
	units, err := s.repo.ListByOrganization(ctx, orgID)
	if err != nil {
		logger.Warn("Failed to load units of measure, using defaults",
			zap.String("organization_id", orgID.String()),
			zap.Error(err),
		)
		units = nil
	}
	return ResolveDisplay(units, s.defaults)
}
