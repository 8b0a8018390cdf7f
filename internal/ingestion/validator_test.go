package ingestion

import (
	"testing"
	"time"
)

func TestValidateReport(t *testing.T) {
	now := time.Now()
	valid := func() *ReportMessage {
		temp := 4.5
		humidity := 55.0
		return &ReportMessage{
			GatewayIMEI:  "356938035643809",
			Timestamp:    now,
			TemperatureC: &temp,
			Humidity:     &humidity,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ReportMessage)
		wantErr bool
	}{
		{"valid", func(*ReportMessage) {}, false},
		{"missing imei", func(m *ReportMessage) { m.GatewayIMEI = "" }, true},
		{"short imei", func(m *ReportMessage) { m.GatewayIMEI = "1234" }, true},
		{"temperature too high", func(m *ReportMessage) { v := 150.0; m.TemperatureC = &v }, true},
		{"humidity over 100", func(m *ReportMessage) { v := 101.0; m.Humidity = &v }, true},
		{"negative battery", func(m *ReportMessage) { v := -1.0; m.Battery = &v }, true},
		{"nil metrics ok", func(m *ReportMessage) { m.TemperatureC = nil; m.Humidity = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(msg)
			errs := ValidateReport(msg)
			if (errs != nil) != tt.wantErr {
				t.Errorf("ValidateReport() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateLocation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		msg     *LocationMessage
		wantErr bool
	}{
		{"valid", &LocationMessage{GatewayIMEI: "356938035643809", Timestamp: now, Latitude: 41.88, Longitude: -87.63}, false},
		{"latitude out of range", &LocationMessage{GatewayIMEI: "356938035643809", Timestamp: now, Latitude: 91, Longitude: 0}, true},
		{"longitude out of range", &LocationMessage{GatewayIMEI: "356938035643809", Timestamp: now, Latitude: 0, Longitude: -181}, true},
		{"missing imei", &LocationMessage{Timestamp: now, Latitude: 10, Longitude: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLocation(tt.msg)
			if (errs != nil) != tt.wantErr {
				t.Errorf("ValidateLocation() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		celsius, fahrenheit float64
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{37.5, 99.5},
	}
	for _, tt := range tests {
		if got := CelsiusToFahrenheit(tt.celsius); got != tt.fahrenheit {
			t.Errorf("CelsiusToFahrenheit(%v) = %v, want %v", tt.celsius, got, tt.fahrenheit)
		}
	}
}
