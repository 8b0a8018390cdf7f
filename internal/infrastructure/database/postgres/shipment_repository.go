package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipment-dashboard/internal/domain/shipment"
	"shipment-dashboard/internal/infrastructure/database/postgres/models"
)

type ShipmentRepository struct {
	db *DB
}

func NewShipmentRepository(db *DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	if s.Status == "" {
		s.Status = shipment.StatusPlanned
	}

	dbModel := toShipmentModel(s)
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dbModel).Error; err != nil {
			return err
		}
		return replaceShipmentRefs(tx, s)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return shipment.ErrDuplicatePartnerID
		}
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	return nil
}

func (r *ShipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Items").
		Preload("Gateways").
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) GetByPartnerID(ctx context.Context, partnerID string) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Items").
		Preload("Gateways").
		Where("partner_shipment_id = ?", partnerID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment by partner id: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	s.UpdatedAt = time.Now()

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ShipmentModel{}).
			Where("id = ?", s.ID).
			Updates(map[string]interface{}{
				"name":                   s.Name,
				"status":                 string(s.Status),
				"partner_shipment_id":    s.PartnerShipmentID,
				"origin":                 s.Origin,
				"destination":            s.Destination,
				"estimated_departure":    s.EstimatedDeparture,
				"estimated_arrival":      s.EstimatedArrival,
				"actual_departure":       s.ActualDeparture,
				"actual_arrival":         s.ActualArrival,
				"had_alert":              s.HadAlert,
				"temp_min_warning":       s.Temperature.MinWarning,
				"temp_max_warning":       s.Temperature.MaxWarning,
				"temp_min_excursion":     s.Temperature.MinExcursion,
				"temp_max_excursion":     s.Temperature.MaxExcursion,
				"humidity_min_warning":   s.Humidity.MinWarning,
				"humidity_max_warning":   s.Humidity.MaxWarning,
				"humidity_min_excursion": s.Humidity.MinExcursion,
				"humidity_max_excursion": s.Humidity.MaxExcursion,
				"shock_max_warning":      s.Shock.MaxWarning,
				"shock_max_excursion":    s.Shock.MaxExcursion,
				"light_max_warning":      s.Light.MaxWarning,
				"light_max_excursion":    s.Light.MaxExcursion,
				"updated_at":             s.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shipment.ErrShipmentNotFound
		}

		if err := tx.Where("shipment_id = ?", s.ID).Delete(&models.ShipmentItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shipment_id = ?", s.ID).Delete(&models.ShipmentGatewayModel{}).Error; err != nil {
			return err
		}
		return replaceShipmentRefs(tx, s)
	})
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			return err
		}
		return fmt.Errorf("failed to update shipment: %w", err)
	}

	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shipment_id = ?", id).Delete(&models.ShipmentItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shipment_id = ?", id).Delete(&models.ShipmentGatewayModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.ShipmentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shipment.ErrShipmentNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete shipment: %w", err)
	}

	return nil
}

func (r *ShipmentRepository) List(ctx context.Context, filter *shipment.Filter) ([]*shipment.Shipment, int64, error) {
	var dbModels []models.ShipmentModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.ShipmentModel{}).
		Where("organization_id = ?", filter.OrganizationID)

	if filter.Status != nil {
		db = db.Where("LOWER(status) = LOWER(?)", string(*filter.Status))
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(partner_shipment_id) LIKE ?", search, search)
	}
	if filter.GatewayIMEI != "" {
		db = db.Where("id IN (?)",
			r.db.DB.Model(&models.ShipmentGatewayModel{}).
				Select("shipment_id").
				Where("gateway_imei = ?", filter.GatewayIMEI))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		db = db.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	err := db.
		Preload("Items").
		Preload("Gateways").
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}

	return shipments, total, nil
}

func (r *ShipmentRepository) GetActiveByGatewayIMEI(ctx context.Context, imei string) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Items").
		Preload("Gateways").
		Where("LOWER(status) = ?", "enroute").
		Where("id IN (?)",
			r.db.DB.Model(&models.ShipmentGatewayModel{}).
				Select("shipment_id").
				Where("gateway_imei = ?", imei)).
		Order("created_at DESC").
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active shipment for gateway: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) SetHadAlert(ctx context.Context, id uuid.UUID, hadAlert bool) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"had_alert":  hadAlert,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set had_alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func replaceShipmentRefs(tx *gorm.DB, s *shipment.Shipment) error {
	for _, itemID := range s.ItemIDs {
		link := models.ShipmentItemModel{ShipmentID: s.ID, ItemID: itemID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	for _, imei := range s.GatewayIMEIs {
		link := models.ShipmentGatewayModel{ShipmentID: s.ID, GatewayIMEI: imei}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

func toShipmentModel(s *shipment.Shipment) *models.ShipmentModel {
	return &models.ShipmentModel{
		ID:                   s.ID,
		OrganizationID:       s.OrganizationID,
		Name:                 s.Name,
		Status:               string(s.Status),
		PartnerShipmentID:    s.PartnerShipmentID,
		Origin:               s.Origin,
		Destination:          s.Destination,
		EstimatedDeparture:   s.EstimatedDeparture,
		EstimatedArrival:     s.EstimatedArrival,
		ActualDeparture:      s.ActualDeparture,
		ActualArrival:        s.ActualArrival,
		HadAlert:             s.HadAlert,
		TempMinWarning:       s.Temperature.MinWarning,
		TempMaxWarning:       s.Temperature.MaxWarning,
		TempMinExcursion:     s.Temperature.MinExcursion,
		TempMaxExcursion:     s.Temperature.MaxExcursion,
		HumidityMinWarning:   s.Humidity.MinWarning,
		HumidityMaxWarning:   s.Humidity.MaxWarning,
		HumidityMinExcursion: s.Humidity.MinExcursion,
		HumidityMaxExcursion: s.Humidity.MaxExcursion,
		ShockMaxWarning:      s.Shock.MaxWarning,
		ShockMaxExcursion:    s.Shock.MaxExcursion,
		LightMaxWarning:      s.Light.MaxWarning,
		LightMaxExcursion:    s.Light.MaxExcursion,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func toShipmentEntity(m *models.ShipmentModel) *shipment.Shipment {
	s := &shipment.Shipment{
		ID:                 m.ID,
		OrganizationID:     m.OrganizationID,
		Name:               m.Name,
		Status:             shipment.ShipmentStatus(m.Status),
		PartnerShipmentID:  m.PartnerShipmentID,
		Origin:             m.Origin,
		Destination:        m.Destination,
		EstimatedDeparture: m.EstimatedDeparture,
		EstimatedArrival:   m.EstimatedArrival,
		ActualDeparture:    m.ActualDeparture,
		ActualArrival:      m.ActualArrival,
		HadAlert:           m.HadAlert,
		Temperature: shipment.MetricBounds{
			MinWarning:   m.TempMinWarning,
			MaxWarning:   m.TempMaxWarning,
			MinExcursion: m.TempMinExcursion,
			MaxExcursion: m.TempMaxExcursion,
		},
		Humidity: shipment.MetricBounds{
			MinWarning:   m.HumidityMinWarning,
			MaxWarning:   m.HumidityMaxWarning,
			MinExcursion: m.HumidityMinExcursion,
			MaxExcursion: m.HumidityMaxExcursion,
		},
		Shock: shipment.MetricBounds{
			MaxWarning:   m.ShockMaxWarning,
			MaxExcursion: m.ShockMaxExcursion,
		},
		Light: shipment.MetricBounds{
			MaxWarning:   m.LightMaxWarning,
			MaxExcursion: m.LightMaxExcursion,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	for _, link := range m.Items {
		s.ItemIDs = append(s.ItemIDs, link.ItemID)
	}
	for _, link := range m.Gateways {
		s.GatewayIMEIs = append(s.GatewayIMEIs, link.GatewayIMEI)
	}

	return s
}
