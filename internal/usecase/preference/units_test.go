package preference

import (
	"testing"
	"time"

	"shipment-dashboard/internal/config"
	domainPreference "shipment-dashboard/internal/domain/preference"
)

func unitList(pairs ...string) []*domainPreference.UnitOfMeasure {
	units := make([]*domainPreference.UnitOfMeasure, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		units = append(units, &domainPreference.UnitOfMeasure{
			UnitOfMeasureFor: pairs[i],
			UnitOfMeasure:    pairs[i+1],
		})
	}
	return units
}

func TestResolveUnit(t *testing.T) {
	units := unitList(
		"Temperature", "Celsius",
		"Date", "DD/MM/YYYY",
	)

	tests := []struct {
		name     string
		category string
		fallback string
		want     string
	}{
		{"exact match", "Temperature", "Fahrenheit", "Celsius"},
		{"case-insensitive match", "temperature", "Fahrenheit", "Celsius"},
		{"upper-case match", "DATE", "MM/DD/YYYY", "DD/MM/YYYY"},
		{"missing category returns fallback", "Distance", "Miles", "Miles"},
		{"empty fallback returned as-is", "Time Zone", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveUnit(units, tt.category, tt.fallback)
			if got != tt.want {
				t.Errorf("ResolveUnit(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestResolveUnitEmptyList(t *testing.T) {
	if got := ResolveUnit(nil, "Temperature", "Fahrenheit"); got != "Fahrenheit" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestDateLayout(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"MM/DD/YYYY", "01/02/2006"},
		{"DD/MM/YYYY", "02/01/2006"},
		{"YYYY-MM-DD", "2006-01-02"},
		{"MMM DD, YYYY", "Jan 02, 2006"},
		{"DD.MM.YY", "02.01.06"},
	}

	for _, tt := range tests {
		if got := DateLayout(tt.format); got != tt.want {
			t.Errorf("DateLayout(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDisplayFormatTimestamp(t *testing.T) {
	defaults := config.DisplayConfig{
		DateFormat:      "MM/DD/YYYY",
		TimeFormat:      "12",
		TemperatureUnit: "Fahrenheit",
		DistanceUnit:    "Miles",
		Timezone:        "UTC",
	}
	ts := time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)

	t.Run("12-hour default", func(t *testing.T) {
		d := ResolveDisplay(nil, defaults)
		if got := d.FormatTimestamp(ts); got != "03/09/2026 02:05 PM" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("24-hour override", func(t *testing.T) {
		d := ResolveDisplay(unitList("Time", "24"), defaults)
		if got := d.FormatTimestamp(ts); got != "03/09/2026 14:05" {
			t.Errorf("got %q", got)
		}
		if !d.Uses24Hour() {
			t.Error("Uses24Hour() = false")
		}
	})

	t.Run("timezone shift", func(t *testing.T) {
		d := ResolveDisplay(unitList("Time Zone", "America/New_York", "Time", "24"), defaults)
		// 14:05 UTC on a March date past the DST switch is 10:05 EDT.
		if got := d.FormatTimestamp(ts); got != "03/09/2026 10:05" {
			t.Errorf("got %q", got)
		}
		if abbr := d.TimezoneAbbreviation(ts); abbr != "EDT" {
			t.Errorf("abbreviation %q, want EDT", abbr)
		}
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		d := ResolveDisplay(unitList("Time Zone", "Mars/Olympus"), defaults)
		if d.TimezoneName != "UTC" {
			t.Errorf("timezone %q, want UTC", d.TimezoneName)
		}
	})
}

func TestDisplayTemperatureUnit(t *testing.T) {
	defaults := config.DisplayConfig{TemperatureUnit: "Fahrenheit", Timezone: "UTC"}

	d := ResolveDisplay(unitList("Temperature", "celsius"), defaults)
	if !d.UsesCelsius() {
		t.Error("UsesCelsius() = false for celsius unit")
	}
	if d.TemperatureSymbol() != "°C" {
		t.Errorf("symbol %q", d.TemperatureSymbol())
	}

	d = ResolveDisplay(nil, defaults)
	if d.UsesCelsius() {
		t.Error("UsesCelsius() = true for Fahrenheit default")
	}
	if d.TemperatureSymbol() != "°F" {
		t.Errorf("symbol %q", d.TemperatureSymbol())
	}
}
