package report

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"shipment-dashboard/internal/config"
	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/usecase/preference"
)

func floatPtr(v float64) *float64 { return &v }

func testDisplay(unit string) *preference.Display {
	return preference.ResolveDisplay(nil, config.DisplayConfig{
		DateFormat:      "MM/DD/YYYY",
		TimeFormat:      "24",
		TemperatureUnit: unit,
		DistanceUnit:    "Miles",
		Timezone:        "UTC",
	})
}

func entryAt(ts time.Time, lat, lng *float64) *domainTelemetry.ReportEntry {
	return &domainTelemetry.ReportEntry{
		ID:           uuid.New(),
		GatewayIMEI:  "356938035643809",
		Timestamp:    ts,
		Latitude:     lat,
		Longitude:    lng,
		TemperatureC: floatPtr(4.0),
		TemperatureF: floatPtr(39.2),
		Humidity:     floatPtr(61.0),
		Battery:      floatPtr(88.0),
	}
}

func wrap(entries ...*domainTelemetry.ReportEntry) []*domainTelemetry.SensorReport {
	return []*domainTelemetry.SensorReport{{
		PartnerShipmentID: "P-1",
		GatewayIMEI:       "356938035643809",
		Entries:           entries,
	}}
}

func TestAggregateMarkerDedupe(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	first := entryAt(base, floatPtr(41.88), floatPtr(-87.63))
	first.TemperatureC = floatPtr(2.0)
	duplicate := entryAt(base.Add(time.Minute), floatPtr(41.88), floatPtr(-87.63))
	duplicate.TemperatureC = floatPtr(9.0)
	elsewhere := entryAt(base.Add(2*time.Minute), floatPtr(42.33), floatPtr(-83.04))

	overview := Aggregate(wrap(first, duplicate, elsewhere), nil, testDisplay("Celsius"))

	if len(overview.Markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(overview.Markers))
	}
	// First entry at the coordinate wins even though a later reading
	// differs.
	if *overview.Markers[0].Temperature != 2.0 {
		t.Errorf("marker temperature = %v, want first-seen value", *overview.Markers[0].Temperature)
	}
	// The duplicate still appears in the tabular report list.
	if len(overview.Reports) != 3 {
		t.Errorf("got %d report rows, want 3", len(overview.Reports))
	}
}

func TestAggregateInvalidLocation(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	entries := []*domainTelemetry.ReportEntry{
		entryAt(base, nil, nil),
		entryAt(base.Add(time.Minute), floatPtr(91.0), floatPtr(0)),
		entryAt(base.Add(2*time.Minute), floatPtr(0), floatPtr(-181.0)),
	}

	overview := Aggregate(wrap(entries...), nil, testDisplay("Fahrenheit"))

	if len(overview.Markers) != 0 {
		t.Errorf("got %d markers for invalid locations, want 0", len(overview.Markers))
	}
	if len(overview.Reports) != 3 {
		t.Errorf("got %d report rows, want 3", len(overview.Reports))
	}
}

func TestAggregateTemperatureUnit(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	entry := entryAt(base, nil, nil)

	celsius := Aggregate(wrap(entry), nil, testDisplay("Celsius"))
	if got := *celsius.Reports[0].Temperature; got != 4.0 {
		t.Errorf("celsius temperature = %v", got)
	}

	fahrenheit := Aggregate(wrap(entry), nil, testDisplay("Fahrenheit"))
	if got := *fahrenheit.Reports[0].Temperature; got != 39.2 {
		t.Errorf("fahrenheit temperature = %v", got)
	}
}

func TestAggregateSeriesDedupe(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	first := entryAt(base, nil, nil)
	first.Humidity = floatPtr(60.0)
	// Same second, different sub-second offset and value.
	same := entryAt(base.Add(300*time.Millisecond), nil, nil)
	same.Humidity = floatPtr(75.0)
	later := entryAt(base.Add(time.Minute), nil, nil)
	later.Humidity = floatPtr(62.0)

	overview := Aggregate(wrap(first, same, later), nil, testDisplay("Celsius"))

	series := overview.Series[MetricHumidity]
	if len(series) != 2 {
		t.Fatalf("got %d humidity points, want 2", len(series))
	}
	if series[0].Value != 60.0 {
		t.Errorf("first point = %v, want first value at the timestamp", series[0].Value)
	}
	if series[1].Value != 62.0 {
		t.Errorf("second point = %v", series[1].Value)
	}
}

func TestAggregateSkipsNilMetrics(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	entry := entryAt(base, nil, nil)
	entry.Shock = nil

	overview := Aggregate(wrap(entry), nil, testDisplay("Celsius"))

	if len(overview.Series[MetricShock]) != 0 {
		t.Errorf("shock series has %d points for nil reading", len(overview.Series[MetricShock]))
	}
	if overview.Series[MetricShock] == nil {
		t.Error("shock series absent from payload")
	}
}

func TestAggregateAlertStatus(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	alertedAt := base.Add(time.Minute)
	recoveredAt := base.Add(2 * time.Minute)

	openID := uuid.New()
	alerts := []*domainTelemetry.Alert{
		{ID: openID, ParameterType: domainTelemetry.ParamTemperature,
			AlertType: "max_excursion", ReportTimestamp: alertedAt},
		{ID: uuid.New(), ParameterType: domainTelemetry.ParamTemperature,
			AlertType: "max_excursion", ReportTimestamp: recoveredAt, RecoveredAlertID: &openID},
	}
	entries := []*domainTelemetry.ReportEntry{
		entryAt(base, nil, nil),
		// Sub-second offset from the alert timestamp still joins.
		entryAt(alertedAt.Add(400*time.Millisecond), nil, nil),
		entryAt(recoveredAt, nil, nil),
	}

	overview := Aggregate(wrap(entries...), alerts, testDisplay("Celsius"))

	want := []string{AlertStatusNone, AlertStatusYes, AlertStatusRecovered}
	for i, w := range want {
		if overview.Reports[i].AlertStatus != w {
			t.Errorf("reports[%d].AlertStatus = %q, want %q", i, overview.Reports[i].AlertStatus, w)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	overview := Aggregate(nil, nil, testDisplay("Fahrenheit"))
	if overview.Markers == nil || overview.Reports == nil {
		t.Error("empty aggregate returned nil slices")
	}
	for _, m := range []string{MetricTemperature, MetricProbe} {
		if overview.Series[m] == nil {
			t.Errorf("series %q missing", m)
		}
	}
}
