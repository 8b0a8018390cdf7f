package ingestion

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shipment-dashboard/internal/domain/shipment"
	"shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/events"
	"shipment-dashboard/internal/logger"
)

// AlertPublisher emits alert events to the message bus. Delivery
// failures are logged, never fatal to ingestion.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, event *events.AlertEvent) error
}

// AlertEngine evaluates report entries against the active shipment's
// thresholds, opening warning/excursion alerts and closing them with
// recovery alerts when the metric returns in range.
type AlertEngine struct {
	shipmentRepo  shipment.Repository
	telemetryRepo telemetry.Repository
	publisher     AlertPublisher
}

func NewAlertEngine(shipmentRepo shipment.Repository, telemetryRepo telemetry.Repository, publisher AlertPublisher) *AlertEngine {
	return &AlertEngine{
		shipmentRepo:  shipmentRepo,
		telemetryRepo: telemetryRepo,
		publisher:     publisher,
	}
}

type metricCheck struct {
	param  telemetry.AlertParameter
	value  *float64
	bounds shipment.MetricBounds
}

// Evaluate resolves the entry's active shipment, fills in the partner
// shipment ID when the gateway omitted it, and returns the alerts it
// created. A gateway with no enroute shipment produces no alerts.
func (e *AlertEngine) Evaluate(ctx context.Context, entry *telemetry.ReportEntry) ([]*telemetry.Alert, error) {
	sh, err := e.shipmentRepo.GetActiveByGatewayIMEI(ctx, entry.GatewayIMEI)
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if entry.PartnerShipmentID == "" {
		entry.PartnerShipmentID = sh.PartnerShipmentID
	}

	checks := []metricCheck{
		{telemetry.ParamTemperature, entry.TemperatureC, sh.Temperature},
		{telemetry.ParamHumidity, entry.Humidity, sh.Humidity},
		{telemetry.ParamShock, entry.Shock, sh.Shock},
		{telemetry.ParamLight, entry.Light, sh.Light},
	}

	var created []*telemetry.Alert
	for _, check := range checks {
		if check.value == nil {
			continue
		}

		alert, err := e.evaluateMetric(ctx, sh, entry, check)
		if err != nil {
			return created, err
		}
		if alert != nil {
			created = append(created, alert)
		}
	}

	return created, nil
}

func (e *AlertEngine) evaluateMetric(ctx context.Context, sh *shipment.Shipment, entry *telemetry.ReportEntry, check metricCheck) (*telemetry.Alert, error) {
	open, err := e.telemetryRepo.GetOpenAlert(ctx, sh.PartnerShipmentID, check.param)
	if err != nil && !errors.Is(err, telemetry.ErrNoOpenAlert) {
		return nil, err
	}

	violation := classify(*check.value, check.bounds)

	if violation == "" {
		if open == nil {
			return nil, nil
		}
		return e.recover(ctx, sh, entry, check.param, open)
	}

	// An already-open alert for the parameter is not re-raised.
	if open != nil {
		return nil, nil
	}

	alert := &telemetry.Alert{
		PartnerShipmentID: sh.PartnerShipmentID,
		ParameterType:     check.param,
		AlertType:         violation,
		ReportTimestamp:   entry.Timestamp,
		CreateDate:        time.Now(),
	}
	if err := e.telemetryRepo.CreateAlert(ctx, alert); err != nil {
		return nil, err
	}

	if !sh.HadAlert {
		if err := e.shipmentRepo.SetHadAlert(ctx, sh.ID, true); err != nil {
			logger.Warn("Failed to flag shipment had_alert",
				zap.String("shipment_id", sh.ID.String()),
				zap.Error(err),
			)
		} else {
			sh.HadAlert = true
		}
	}

	logger.Info("Alert raised",
		zap.String("partner_shipment_id", sh.PartnerShipmentID),
		zap.String("parameter", string(check.param)),
		zap.String("alert_type", violation),
		zap.Float64("value", *check.value),
	)

	e.publish(ctx, events.KindCreated, alert)
	return alert, nil
}

func (e *AlertEngine) recover(ctx context.Context, sh *shipment.Shipment, entry *telemetry.ReportEntry, param telemetry.AlertParameter, open *telemetry.Alert) (*telemetry.Alert, error) {
	recovery := &telemetry.Alert{
		PartnerShipmentID: sh.PartnerShipmentID,
		ParameterType:     param,
		AlertType:         open.AlertType,
		ReportTimestamp:   entry.Timestamp,
		CreateDate:        time.Now(),
		RecoveredAlertID:  &open.ID,
	}
	if err := e.telemetryRepo.CreateAlert(ctx, recovery); err != nil {
		return nil, err
	}

	logger.Info("Alert recovered",
		zap.String("partner_shipment_id", sh.PartnerShipmentID),
		zap.String("parameter", string(param)),
		zap.String("recovered_alert_id", open.ID.String()),
	)

	e.publish(ctx, events.KindRecovered, recovery)
	return recovery, nil
}

func (e *AlertEngine) publish(ctx context.Context, kind string, alert *telemetry.Alert) {
	if e.publisher == nil {
		return
	}
	event := &events.AlertEvent{
		Kind:              kind,
		AlertID:           alert.ID,
		PartnerShipmentID: alert.PartnerShipmentID,
		ParameterType:     string(alert.ParameterType),
		AlertType:         alert.AlertType,
		OccurredAt:        alert.CreateDate,
	}
	if err := e.publisher.PublishAlert(ctx, event); err != nil {
		logger.Warn("Failed to publish alert event",
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}

// classify names the threshold a value violates, excursions taking
// precedence over warnings. Empty string means in range.
func classify(v float64, b shipment.MetricBounds) string {
	switch {
	case b.MinExcursion != nil && v < *b.MinExcursion:
		return telemetry.BoundMin + "_" + telemetry.LevelExcursion
	case b.MaxExcursion != nil && v > *b.MaxExcursion:
		return telemetry.BoundMax + "_" + telemetry.LevelExcursion
	case b.MinWarning != nil && v < *b.MinWarning:
		return telemetry.BoundMin + "_" + telemetry.LevelWarning
	case b.MaxWarning != nil && v > *b.MaxWarning:
		return telemetry.BoundMax + "_" + telemetry.LevelWarning
	default:
		return ""
	}
}
