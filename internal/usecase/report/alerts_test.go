package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
)

func TestFormatAlertsDropsLocationAlerts(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	alerts := []*domainTelemetry.Alert{
		{ID: uuid.New(), ParameterType: domainTelemetry.ParamLocation, AlertType: "geofence", CreateDate: base},
		{ID: uuid.New(), ParameterType: domainTelemetry.ParamTemperature, AlertType: "max_excursion", CreateDate: base},
	}

	rows := FormatAlerts(alerts, nil, testDisplay("Fahrenheit"))

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].ParameterType != "temperature" {
		t.Errorf("kept row = %q", rows[0].ParameterType)
	}
}

func TestFormatAlertsSeverityAndTitle(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	closedID := uuid.New()

	tests := []struct {
		name         string
		alert        *domainTelemetry.Alert
		wantSeverity string
		wantTitle    string
	}{
		{
			name:         "max excursion is high",
			alert:        &domainTelemetry.Alert{ID: uuid.New(), ParameterType: domainTelemetry.ParamTemperature, AlertType: "max_excursion", CreateDate: base},
			wantSeverity: "high",
			wantTitle:    "Maximum Temperature",
		},
		{
			name:         "min warning is informational",
			alert:        &domainTelemetry.Alert{ID: uuid.New(), ParameterType: domainTelemetry.ParamHumidity, AlertType: "min_warning", CreateDate: base},
			wantSeverity: "info",
			wantTitle:    "Minimum Humidity",
		},
		{
			name:         "shock is high",
			alert:        &domainTelemetry.Alert{ID: uuid.New(), ParameterType: domainTelemetry.ParamShock, AlertType: "shock_excursion", CreateDate: base},
			wantSeverity: "high",
			wantTitle:    "Shock",
		},
		{
			name:         "recovery wins",
			alert:        &domainTelemetry.Alert{ID: uuid.New(), ParameterType: domainTelemetry.ParamTemperature, AlertType: "max_excursion", CreateDate: base, RecoveredAlertID: &closedID},
			wantSeverity: "recovered",
			wantTitle:    "Temperature Recovered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := FormatAlerts([]*domainTelemetry.Alert{tt.alert}, nil, testDisplay("Fahrenheit"))
			if rows[0].Severity != tt.wantSeverity {
				t.Errorf("severity = %q, want %q", rows[0].Severity, tt.wantSeverity)
			}
			if rows[0].Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", rows[0].Title, tt.wantTitle)
			}
		})
	}
}

func TestFormatAlertsLocationJoin(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	matched := base.Add(time.Minute)

	entryWithCoords := entryAt(matched.Add(200*time.Millisecond), floatPtr(41.88), floatPtr(-87.63))
	entryWithout := entryAt(base, nil, nil)

	alerts := []*domainTelemetry.Alert{
		{ID: uuid.New(), ParameterType: domainTelemetry.ParamTemperature, AlertType: "max_excursion",
			ReportTimestamp: matched, CreateDate: base.Add(2 * time.Hour)},
		{ID: uuid.New(), ParameterType: domainTelemetry.ParamTemperature, AlertType: "min_warning",
			ReportTimestamp: base, CreateDate: base.Add(time.Hour)},
		{ID: uuid.New(), ParameterType: domainTelemetry.ParamHumidity, AlertType: "max_warning",
			ReportTimestamp: base.Add(9 * time.Hour), CreateDate: base},
	}

	rows := FormatAlerts(alerts, wrap(entryWithout, entryWithCoords), testDisplay("Fahrenheit"))

	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}

	// Sorted descending by create date.
	if rows[0].AlertType != "max_excursion" || rows[2].AlertType != "max_warning" {
		t.Errorf("sort order wrong: %q, %q, %q", rows[0].AlertType, rows[1].AlertType, rows[2].AlertType)
	}

	if rows[0].Location != "41.88000, -87.63000" {
		t.Errorf("matched location = %q", rows[0].Location)
	}
	if rows[0].Latitude == nil || *rows[0].Latitude != 41.88 {
		t.Error("matched latitude missing")
	}

	// Entry matched but carries no coordinates.
	if rows[1].Location != LocationUnknown {
		t.Errorf("coordless location = %q", rows[1].Location)
	}
	// No entry at the alert's timestamp at all.
	if rows[2].Location != LocationUnknown {
		t.Errorf("unmatched location = %q", rows[2].Location)
	}
}

func TestExportAlertsCSV(t *testing.T) {
	display := testDisplay("Fahrenheit")
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	rows := []*AlertRow{
		{Title: "Maximum Temperature", ParameterType: "temperature", Severity: "high",
			Timestamp: "04/01/2026 10:00", Location: "41.88000, -87.63000",
			Latitude: floatPtr(41.88), Longitude: floatPtr(-87.63)},
		{Title: "Minimum Humidity", ParameterType: "humidity", Severity: "info",
			Timestamp: "04/01/2026 11:00", Location: LocationUnknown},
	}

	out := ExportAlertsCSV(rows, display, now)
	lines := strings.Split(out, "\n")

	if len(lines) != len(rows)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(rows)+1)
	}

	// Every cell in every line is wrapped in double quotes.
	for i, line := range lines {
		for _, cell := range strings.Split(line, `","`) {
			trimmed := strings.TrimPrefix(strings.TrimSuffix(cell, `"`), `"`)
			if strings.HasPrefix(trimmed, `"`) || !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
				t.Errorf("line %d not fully quoted: %q", i, line)
			}
		}
	}

	if !strings.Contains(lines[0], `"Date/Time stamp (UTC, 24-hour)"`) {
		t.Errorf("header = %q", lines[0])
	}

	// The N/A row exports blank coordinates.
	if !strings.HasSuffix(lines[2], `"N/A","",""`) {
		t.Errorf("N/A row = %q", lines[2])
	}
	if !strings.Contains(lines[1], `"41.88","-87.63"`) {
		t.Errorf("located row = %q", lines[1])
	}
}
