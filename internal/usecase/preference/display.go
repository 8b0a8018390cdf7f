package preference

import (
	"strings"
	"time"

	"shipment-dashboard/internal/config"
	domainPreference "shipment-dashboard/internal/domain/preference"
)

// Display is the resolved set of formatting preferences for one
// organization. It is computed once per request and passed to the
// formatters so every derived view renders consistently.
type Display struct {
	DateFormat      string
	TimeFormat      string
	TemperatureUnit string
	DistanceUnit    string
	TimezoneName    string

	Location *time.Location
}

// ResolveDisplay combines an organization's unit-of-measure records with
// the configured defaults. An unknown timezone falls back to UTC rather
// than failing the request.
func ResolveDisplay(units []*domainPreference.UnitOfMeasure, defaults config.DisplayConfig) *Display {
	d := &Display{
		DateFormat:      ResolveUnit(units, domainPreference.CategoryDate, defaults.DateFormat),
		TimeFormat:      ResolveUnit(units, domainPreference.CategoryTime, defaults.TimeFormat),
		TemperatureUnit: ResolveUnit(units, domainPreference.CategoryTemperature, defaults.TemperatureUnit),
		DistanceUnit:    ResolveUnit(units, domainPreference.CategoryDistance, defaults.DistanceUnit),
		TimezoneName:    ResolveUnit(units, domainPreference.CategoryTimezone, defaults.Timezone),
	}

	loc, err := time.LoadLocation(d.TimezoneName)
	if err != nil {
		loc = time.UTC
		d.TimezoneName = "UTC"
	}
	d.Location = loc

	return d
}

// Date format tokens as stored by the admin panel ("MM/DD/YYYY" and
// friends), longest first so "MMM" is not consumed as "MM".
var dateTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"DD", "02"},
}

// DateLayout translates the stored date format into a Go reference layout.
// Unrecognized characters pass through unchanged.
func DateLayout(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

// Uses24Hour reports whether the organization displays 24-hour times.
func (d *Display) Uses24Hour() bool {
	return strings.TrimSpace(d.TimeFormat) == "24"
}

func (d *Display) timeLayout() string {
	if d.Uses24Hour() {
		return "15:04"
	}
	return "03:04 PM"
}

// Layout returns the combined date/time reference layout.
func (d *Display) Layout() string {
	return DateLayout(d.DateFormat) + " " + d.timeLayout()
}

// FormatTimestamp renders a timestamp in the organization's timezone and
// configured date/time format.
func (d *Display) FormatTimestamp(t time.Time) string {
	return t.In(d.Location).Format(d.Layout())
}

// TimezoneAbbreviation returns the zone abbreviation in effect at the
// given instant, e.g. "EST" or "CEST".
func (d *Display) TimezoneAbbreviation(at time.Time) string {
	abbr, _ := at.In(d.Location).Zone()
	return abbr
}

// UsesCelsius reports whether temperature readings should be taken from
// the Celsius fields.
func (d *Display) UsesCelsius() bool {
	return strings.EqualFold(d.TemperatureUnit, "Celsius")
}

// TemperatureSymbol returns the degree symbol for the configured unit.
func (d *Display) TemperatureSymbol() string {
	if d.UsesCelsius() {
		return "°C"
	}
	return "°F"
}
