package telemetry

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AlertParameter names the metric an alert fires on.
type AlertParameter string

const (
	ParamTemperature AlertParameter = "temperature"
	ParamHumidity    AlertParameter = "humidity"
	ParamShock       AlertParameter = "shock"
	ParamLight       AlertParameter = "light"
	ParamLocation    AlertParameter = "location"
)

// Alert type fragments. The stored alert_type string is "<bound>_<level>",
// e.g. "max_excursion" or "min_warning"; recovery events reuse the type of
// the alert they close.
const (
	BoundMin       = "min"
	BoundMax       = "max"
	LevelWarning   = "warning"
	LevelExcursion = "excursion"
)

// ReportEntry is one sensor reading reported by a gateway for a shipment.
// Temperatures are stored in both scales so the display layer can pick the
// organization's configured unit without converting.
type ReportEntry struct {
	ID                uuid.UUID
	PartnerShipmentID string
	GatewayIMEI       string
	Timestamp         time.Time

	Latitude  *float64
	Longitude *float64

	TemperatureC      *float64
	TemperatureF      *float64
	Humidity          *float64
	Light             *float64
	Shock             *float64
	Tilt              *float64
	Battery           *float64
	Pressure          *float64
	ProbeTemperatureC *float64
	ProbeTemperatureF *float64

	CreatedAt time.Time
}

// HasValidLocation reports whether the entry carries a usable coordinate
// pair. Out-of-range values are treated the same as absent ones.
func (e *ReportEntry) HasValidLocation() bool {
	if e.Latitude == nil || e.Longitude == nil {
		return false
	}
	if *e.Latitude < -90 || *e.Latitude > 90 {
		return false
	}
	if *e.Longitude < -180 || *e.Longitude > 180 {
		return false
	}
	return true
}

// SensorReport groups the entries one gateway produced for one shipment.
type SensorReport struct {
	PartnerShipmentID string
	GatewayIMEI       string
	Entries           []*ReportEntry
}

// Alert records a threshold violation (or its recovery) for a shipment.
type Alert struct {
	ID                uuid.UUID
	PartnerShipmentID string
	ParameterType     AlertParameter
	AlertType         string

	// ReportTimestamp is the timestamp of the entry that triggered the
	// alert. Joins against report entries compare this value truncated
	// to the second, never a formatted string.
	ReportTimestamp time.Time
	CreateDate      time.Time

	// RecoveredAlertID points at the alert this event closes. Set only
	// on recovery events.
	RecoveredAlertID *uuid.UUID
}

// IsRecovery reports whether the alert closes an earlier one.
func (a *Alert) IsRecovery() bool {
	return a.RecoveredAlertID != nil
}

// Severity buckets used by the alerts table and badges.
const (
	SeverityHigh      = "high"
	SeverityInfo      = "info"
	SeverityRecovered = "recovered"
)

// Severity classifies the alert for display. Recovery wins; otherwise the
// bucket is decided by substring match on the alert type.
func (a *Alert) Severity() string {
	if a.IsRecovery() {
		return SeverityRecovered
	}
	t := strings.ToLower(a.AlertType)
	switch {
	case strings.Contains(t, BoundMax),
		strings.Contains(t, string(ParamShock)),
		strings.Contains(t, string(ParamLight)):
		return SeverityHigh
	case strings.Contains(t, BoundMin):
		return SeverityInfo
	default:
		return SeverityInfo
	}
}
