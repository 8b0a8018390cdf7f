package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainShipment "shipment-dashboard/internal/domain/shipment"
	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/logger"
	"shipment-dashboard/internal/usecase/preference"
	appErrors "shipment-dashboard/pkg/errors"
)

// Service implements the shipment overview, alerts and export use cases.
type Service struct {
	shipmentRepo  domainShipment.Repository
	telemetryRepo domainTelemetry.Repository
	preferences   *preference.Service
}

func NewService(
	shipmentRepo domainShipment.Repository,
	telemetryRepo domainTelemetry.Repository,
	preferences *preference.Service,
) *Service {
	return &Service{
		shipmentRepo:  shipmentRepo,
		telemetryRepo: telemetryRepo,
		preferences:   preferences,
	}
}

// GetOverview builds the aggregated map/graph view for a shipment from
// one snapshot of its reports and alerts.
func (s *Service) GetOverview(ctx context.Context, shipmentID uuid.UUID) (*Overview, error) {
	sh, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	reports, err := s.telemetryRepo.ListReports(ctx, sh.PartnerShipmentID)
	if err != nil {
		return nil, err
	}
	alerts, err := s.telemetryRepo.ListAlerts(ctx, sh.PartnerShipmentID)
	if err != nil {
		return nil, err
	}

	display := s.preferences.ResolveDisplay(ctx, sh.OrganizationID)
	overview := Aggregate(reports, alerts, display)

	if overview.Skipped > 0 {
		logger.Warn("Report entries skipped during aggregation",
			zap.String("shipment_id", shipmentID.String()),
			zap.Int("skipped", overview.Skipped),
		)
	}

	return overview, nil
}

// GetAlerts returns the formatted alert rows for a shipment.
func (s *Service) GetAlerts(ctx context.Context, shipmentID uuid.UUID) ([]*AlertRow, error) {
	sh, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	alerts, err := s.telemetryRepo.ListAlerts(ctx, sh.PartnerShipmentID)
	if err != nil {
		return nil, err
	}
	reports, err := s.telemetryRepo.ListReports(ctx, sh.PartnerShipmentID)
	if err != nil {
		return nil, err
	}

	display := s.preferences.ResolveDisplay(ctx, sh.OrganizationID)
	return FormatAlerts(alerts, reports, display), nil
}

// ExportAlerts renders the shipment's alerts as a CSV attachment.
func (s *Service) ExportAlerts(ctx context.Context, shipmentID uuid.UUID) (filename, content string, err error) {
	sh, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return "", "", err
	}

	rows, err := s.GetAlerts(ctx, shipmentID)
	if err != nil {
		return "", "", err
	}
	if len(rows) == 0 {
		return "", "", appErrors.ErrExportNoData
	}

	display := s.preferences.ResolveDisplay(ctx, sh.OrganizationID)
	content = ExportAlertsCSV(rows, display, time.Now())
	filename = fmt.Sprintf("alerts-%s-%s.csv", sh.PartnerShipmentID, time.Now().Format("20060102"))

	logger.Info("Alerts exported",
		zap.String("shipment_id", shipmentID.String()),
		zap.Int("rows", len(rows)),
	)

	return filename, content, nil
}
