package report

import (
	"time"

	"go.uber.org/zap"

	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/logger"
	"shipment-dashboard/internal/usecase/preference"
)

type coordinate struct {
	lat float64
	lng float64
}

// Aggregate walks every report entry across the shipment's sensor
// reports and derives the map markers, per-metric time series and
// tabular report rows in one pass. A failure while processing a single
// entry is logged and that entry skipped; the rest of the aggregation
// continues.
func Aggregate(reports []*domainTelemetry.SensorReport, alerts []*domainTelemetry.Alert, display *preference.Display) *Overview {
	overview := &Overview{
		Markers:         []*Marker{},
		Series:          make(map[string][]SeriesPoint, len(metricOrder)),
		Reports:         []*ReportRow{},
		TemperatureUnit: display.TemperatureUnit,
	}
	for _, m := range metricOrder {
		overview.Series[m] = []SeriesPoint{}
	}

	alertIndex := indexAlertsByTimestamp(alerts)
	seenCoords := make(map[coordinate]struct{})
	seenSeries := make(map[string]map[int64]struct{}, len(metricOrder))
	for _, m := range metricOrder {
		seenSeries[m] = make(map[int64]struct{})
	}

	for _, r := range reports {
		for _, entry := range r.Entries {
			if ok := appendEntry(overview, entry, alertIndex, seenCoords, seenSeries, display); !ok {
				overview.Skipped++
			}
		}
	}

	return overview
}

// indexAlertsByTimestamp keys alerts by their report timestamp truncated
// to the second, which is the join resolution sensor entries report at.
func indexAlertsByTimestamp(alerts []*domainTelemetry.Alert) map[int64]*domainTelemetry.Alert {
	index := make(map[int64]*domainTelemetry.Alert, len(alerts))
	for _, a := range alerts {
		key := a.ReportTimestamp.Truncate(time.Second).Unix()
		if _, ok := index[key]; !ok {
			index[key] = a
		}
	}
	return index
}

func alertStatusAt(index map[int64]*domainTelemetry.Alert, ts time.Time) string {
	a, ok := index[ts.Truncate(time.Second).Unix()]
	if !ok {
		return AlertStatusNone
	}
	if a.IsRecovery() {
		return AlertStatusRecovered
	}
	return AlertStatusYes
}

// appendEntry folds one report entry into the overview. Returns false if
// the entry was skipped due to a processing failure.
func appendEntry(
	overview *Overview,
	entry *domainTelemetry.ReportEntry,
	alertIndex map[int64]*domainTelemetry.Alert,
	seenCoords map[coordinate]struct{},
	seenSeries map[string]map[int64]struct{},
	display *preference.Display,
) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Skipping malformed report entry",
				zap.String("gateway_imei", entry.GatewayIMEI),
				zap.Any("panic", r),
			)
			ok = false
		}
	}()

	formatted := display.FormatTimestamp(entry.Timestamp)
	status := alertStatusAt(alertIndex, entry.Timestamp)
	temperature := entry.TemperatureF
	probe := entry.ProbeTemperatureF
	if display.UsesCelsius() {
		temperature = entry.TemperatureC
		probe = entry.ProbeTemperatureC
	}

	overview.Reports = append(overview.Reports, &ReportRow{
		GatewayIMEI: entry.GatewayIMEI,
		Timestamp:   formatted,
		Latitude:    entry.Latitude,
		Longitude:   entry.Longitude,
		Temperature: temperature,
		Humidity:    entry.Humidity,
		Light:       entry.Light,
		Shock:       entry.Shock,
		Battery:     entry.Battery,
		AlertStatus: status,
	})

	if entry.HasValidLocation() {
		coord := coordinate{lat: *entry.Latitude, lng: *entry.Longitude}
		if _, seen := seenCoords[coord]; !seen {
			seenCoords[coord] = struct{}{}
			overview.Markers = append(overview.Markers, &Marker{
				Latitude:    coord.lat,
				Longitude:   coord.lng,
				Timestamp:   formatted,
				GatewayIMEI: entry.GatewayIMEI,
				Temperature: temperature,
				Humidity:    entry.Humidity,
				Battery:     entry.Battery,
				AlertStatus: status,
			})
		}
	}

	key := entry.Timestamp.Truncate(time.Second).Unix()
	values := map[string]*float64{
		MetricTemperature: temperature,
		MetricHumidity:    entry.Humidity,
		MetricLight:       entry.Light,
		MetricShock:       entry.Shock,
		MetricTilt:        entry.Tilt,
		MetricBattery:     entry.Battery,
		MetricPressure:    entry.Pressure,
		MetricProbe:       probe,
	}
	for _, metric := range metricOrder {
		v := values[metric]
		if v == nil {
			continue
		}
		if _, seen := seenSeries[metric][key]; seen {
			continue
		}
		seenSeries[metric][key] = struct{}{}
		overview.Series[metric] = append(overview.Series[metric], SeriesPoint{
			Timestamp: formatted,
			Unix:      key,
			Value:     *v,
		})
	}

	return true
}
