package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipment-dashboard/internal/domain/preference"
	"shipment-dashboard/internal/infrastructure/database/postgres/models"
)

type PreferenceRepository struct {
	db *DB
}

func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*preference.UnitOfMeasure, error) {
	var dbModels []models.UnitOfMeasureModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("unit_of_measure_for ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list units of measure: %w", err)
	}

	units := make([]*preference.UnitOfMeasure, len(dbModels))
	for i := range dbModels {
		units[i] = toUnitEntity(&dbModels[i])
	}

	return units, nil
}

func (r *PreferenceRepository) ReplaceForOrganization(ctx context.Context, orgID uuid.UUID, units []*preference.UnitOfMeasure) error {
	now := time.Now()

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", orgID).
			Delete(&models.UnitOfMeasureModel{}).Error; err != nil {
			return err
		}

		for _, u := range units {
			u.ID = uuid.New()
			u.OrganizationID = orgID
			u.CreatedAt = now
			u.UpdatedAt = now
			if err := tx.Create(toUnitModel(u)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace units of measure: %w", err)
	}

	return nil
}

func toUnitModel(u *preference.UnitOfMeasure) *models.UnitOfMeasureModel {
	return &models.UnitOfMeasureModel{
		ID:               u.ID,
		OrganizationID:   u.OrganizationID,
		UnitOfMeasureFor: u.UnitOfMeasureFor,
		UnitOfMeasure:    u.UnitOfMeasure,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toUnitEntity(m *models.UnitOfMeasureModel) *preference.UnitOfMeasure {
	return &preference.UnitOfMeasure{
		ID:               m.ID,
		OrganizationID:   m.OrganizationID,
		UnitOfMeasureFor: m.UnitOfMeasureFor,
		UnitOfMeasure:    m.UnitOfMeasure,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
