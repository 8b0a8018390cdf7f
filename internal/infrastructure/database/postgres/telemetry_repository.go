package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/infrastructure/database/postgres/models"
)

type TelemetryRepository struct {
	db *DB
}

func NewTelemetryRepository(db *DB) *TelemetryRepository {
	return &TelemetryRepository{db: db}
}

func (r *TelemetryRepository) InsertEntries(ctx context.Context, entries []*telemetry.ReportEntry) error {
	if len(entries) == 0 {
		return telemetry.ErrEmptyBatch
	}

	now := time.Now()
	dbModels := make([]models.ReportEntryModel, len(entries))
	for i, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		e.CreatedAt = now
		dbModels[i] = *toReportEntryModel(e)
	}

	if err := r.db.DB.WithContext(ctx).Create(&dbModels).Error; err != nil {
		return fmt.Errorf("failed to insert report entries: %w", err)
	}

	return nil
}

func (r *TelemetryRepository) ListEntries(ctx context.Context, partnerID string) ([]*telemetry.ReportEntry, error) {
	var dbModels []models.ReportEntryModel
	err := r.db.DB.WithContext(ctx).
		Where("partner_shipment_id = ?", partnerID).
		Order("timestamp ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list report entries: %w", err)
	}

	entries := make([]*telemetry.ReportEntry, len(dbModels))
	for i := range dbModels {
		entries[i] = toReportEntryEntity(&dbModels[i])
	}

	return entries, nil
}

func (r *TelemetryRepository) ListReports(ctx context.Context, partnerID string) ([]*telemetry.SensorReport, error) {
	entries, err := r.ListEntries(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	// Group per gateway preserving timestamp order within each report.
	byIMEI := make(map[string]*telemetry.SensorReport)
	var order []string
	for _, e := range entries {
		report, ok := byIMEI[e.GatewayIMEI]
		if !ok {
			report = &telemetry.SensorReport{
				PartnerShipmentID: partnerID,
				GatewayIMEI:       e.GatewayIMEI,
			}
			byIMEI[e.GatewayIMEI] = report
			order = append(order, e.GatewayIMEI)
		}
		report.Entries = append(report.Entries, e)
	}

	reports := make([]*telemetry.SensorReport, len(order))
	for i, imei := range order {
		reports[i] = byIMEI[imei]
	}

	return reports, nil
}

func (r *TelemetryRepository) CreateAlert(ctx context.Context, alert *telemetry.Alert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreateDate.IsZero() {
		alert.CreateDate = time.Now()
	}

	if err := r.db.DB.WithContext(ctx).Create(toAlertModel(alert)).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	return nil
}

func (r *TelemetryRepository) ListAlerts(ctx context.Context, partnerID string) ([]*telemetry.Alert, error) {
	return r.listAlerts(ctx, "partner_shipment_id = ?", partnerID)
}

func (r *TelemetryRepository) ListAlertsByPartnerIDs(ctx context.Context, partnerIDs []string) ([]*telemetry.Alert, error) {
	if len(partnerIDs) == 0 {
		return nil, nil
	}
	return r.listAlerts(ctx, "partner_shipment_id IN ?", partnerIDs)
}

func (r *TelemetryRepository) listAlerts(ctx context.Context, query string, args ...interface{}) ([]*telemetry.Alert, error) {
	var dbModels []models.AlertModel
	err := r.db.DB.WithContext(ctx).
		Where(query, args...).
		Order("create_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts := make([]*telemetry.Alert, len(dbModels))
	for i := range dbModels {
		alerts[i] = toAlertEntity(&dbModels[i])
	}

	return alerts, nil
}

func (r *TelemetryRepository) GetAlert(ctx context.Context, id uuid.UUID) (*telemetry.Alert, error) {
	var dbModel models.AlertModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, telemetry.ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return toAlertEntity(&dbModel), nil
}

func (r *TelemetryRepository) GetOpenAlert(ctx context.Context, partnerID string, param telemetry.AlertParameter) (*telemetry.Alert, error) {
	var dbModel models.AlertModel
	err := r.db.DB.WithContext(ctx).
		Where("partner_shipment_id = ? AND parameter_type = ?", partnerID, string(param)).
		Where("recovered_alert_id IS NULL").
		Where("id NOT IN (?)",
			r.db.DB.Model(&models.AlertModel{}).
				Select("recovered_alert_id").
				Where("partner_shipment_id = ? AND recovered_alert_id IS NOT NULL", partnerID)).
		Order("create_date DESC").
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, telemetry.ErrNoOpenAlert
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open alert: %w", err)
	}

	return toAlertEntity(&dbModel), nil
}

func toReportEntryModel(e *telemetry.ReportEntry) *models.ReportEntryModel {
	return &models.ReportEntryModel{
		ID:                e.ID,
		PartnerShipmentID: e.PartnerShipmentID,
		GatewayIMEI:       e.GatewayIMEI,
		Timestamp:         e.Timestamp,
		Latitude:          e.Latitude,
		Longitude:         e.Longitude,
		TemperatureC:      e.TemperatureC,
		TemperatureF:      e.TemperatureF,
		Humidity:          e.Humidity,
		Light:             e.Light,
		Shock:             e.Shock,
		Tilt:              e.Tilt,
		Battery:           e.Battery,
		Pressure:          e.Pressure,
		ProbeTemperatureC: e.ProbeTemperatureC,
		ProbeTemperatureF: e.ProbeTemperatureF,
		CreatedAt:         e.CreatedAt,
	}
}

func toReportEntryEntity(m *models.ReportEntryModel) *telemetry.ReportEntry {
	return &telemetry.ReportEntry{
		ID:                m.ID,
		PartnerShipmentID: m.PartnerShipmentID,
		GatewayIMEI:       m.GatewayIMEI,
		Timestamp:         m.Timestamp,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		TemperatureC:      m.TemperatureC,
		TemperatureF:      m.TemperatureF,
		Humidity:          m.Humidity,
		Light:             m.Light,
		Shock:             m.Shock,
		Tilt:              m.Tilt,
		Battery:           m.Battery,
		Pressure:          m.Pressure,
		ProbeTemperatureC: m.ProbeTemperatureC,
		ProbeTemperatureF: m.ProbeTemperatureF,
		CreatedAt:         m.CreatedAt,
	}
}

func toAlertModel(a *telemetry.Alert) *models.AlertModel {
	return &models.AlertModel{
		ID:                a.ID,
		PartnerShipmentID: a.PartnerShipmentID,
		ParameterType:     string(a.ParameterType),
		AlertType:         a.AlertType,
		ReportTimestamp:   a.ReportTimestamp,
		CreateDate:        a.CreateDate,
		RecoveredAlertID:  a.RecoveredAlertID,
	}
}

func toAlertEntity(m *models.AlertModel) *telemetry.Alert {
	return &telemetry.Alert{
		ID:                m.ID,
		PartnerShipmentID: m.PartnerShipmentID,
		ParameterType:     telemetry.AlertParameter(m.ParameterType),
		AlertType:         m.AlertType,
		ReportTimestamp:   m.ReportTimestamp,
		CreateDate:        m.CreateDate,
		RecoveredAlertID:  m.RecoveredAlertID,
	}
}
