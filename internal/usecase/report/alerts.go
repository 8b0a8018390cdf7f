package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/usecase/preference"
)

// LocationUnknown is shown when no report entry matches the alert's
// timestamp or the matching entry has no usable coordinates.
const LocationUnknown = "N/A"

// FormatAlerts produces the alert table rows: location-type alerts are
// dropped, severity and title derive from the alert type, and the
// human-readable location comes from the report entry sharing the
// alert's report timestamp (truncated to the second). Rows are sorted
// descending by create date.
func FormatAlerts(alerts []*domainTelemetry.Alert, reports []*domainTelemetry.SensorReport, display *preference.Display) []*AlertRow {
	entryIndex := make(map[int64]*domainTelemetry.ReportEntry)
	for _, r := range reports {
		for _, e := range r.Entries {
			key := e.Timestamp.Truncate(time.Second).Unix()
			if _, ok := entryIndex[key]; !ok {
				entryIndex[key] = e
			}
		}
	}

	rows := make([]*AlertRow, 0, len(alerts))
	createDates := make(map[*AlertRow]time.Time, len(alerts))
	for _, a := range alerts {
		if a.ParameterType == domainTelemetry.ParamLocation {
			continue
		}

		row := &AlertRow{
			ID:              a.ID.String(),
			ParameterType:   string(a.ParameterType),
			AlertType:       a.AlertType,
			Title:           alertTitle(a),
			Severity:        a.Severity(),
			Timestamp:       display.FormatTimestamp(a.CreateDate),
			ReportTimestamp: display.FormatTimestamp(a.ReportTimestamp),
			Location:        LocationUnknown,
		}

		if entry, ok := entryIndex[a.ReportTimestamp.Truncate(time.Second).Unix()]; ok && entry.HasValidLocation() {
			row.Location = fmt.Sprintf("%.5f, %.5f", *entry.Latitude, *entry.Longitude)
			row.Latitude = entry.Latitude
			row.Longitude = entry.Longitude
		}

		createDates[row] = a.CreateDate
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return createDates[rows[i]].After(createDates[rows[j]])
	})

	return rows
}

// alertTitle renders the badge text for an alert.
func alertTitle(a *domainTelemetry.Alert) string {
	param := titleCase(string(a.ParameterType))
	if a.IsRecovery() {
		return param + " Recovered"
	}
	switch {
	case contains(a.AlertType, domainTelemetry.BoundMax):
		return "Maximum " + param
	case contains(a.AlertType, domainTelemetry.BoundMin):
		return "Minimum " + param
	default:
		return param
	}
}

func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
