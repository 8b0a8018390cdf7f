package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shipment-dashboard/internal/usecase/preference"
)

// ExportAlertsCSV serializes alert rows for download. Every cell is
// wrapped in double quotes regardless of content, matching what the
// dashboard's download links have always produced and what downstream
// spreadsheet imports expect. The "Date/Time stamp" header carries the
// organization's timezone abbreviation and hour convention; rows without
// a resolved location export blank latitude/longitude cells.
func ExportAlertsCSV(rows []*AlertRow, display *preference.Display, now time.Time) string {
	hourMarker := "12-hour"
	if display.Uses24Hour() {
		hourMarker = "24-hour"
	}
	header := []string{
		"Alert",
		"Parameter",
		"Severity",
		fmt.Sprintf("Date/Time stamp (%s, %s)", display.TimezoneAbbreviation(now), hourMarker),
		"Location",
		"Latitude",
		"Longitude",
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvLine(header))

	for _, r := range rows {
		lat, lng := "", ""
		if r.Location != LocationUnknown && r.Location != "" {
			if r.Latitude != nil {
				lat = strconv.FormatFloat(*r.Latitude, 'f', -1, 64)
			}
			if r.Longitude != nil {
				lng = strconv.FormatFloat(*r.Longitude, 'f', -1, 64)
			}
		}
		lines = append(lines, csvLine([]string{
			r.Title,
			r.ParameterType,
			r.Severity,
			r.Timestamp,
			r.Location,
			lat,
			lng,
		}))
	}

	return strings.Join(lines, "\n")
}

// csvLine quotes every cell unconditionally, doubling embedded quotes.
func csvLine(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
