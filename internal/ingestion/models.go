package ingestion

import (
	"encoding/json"
	"time"
)

// ReportMessage is one sensor reading published by a tracker gateway.
// Temperatures arrive in Celsius; the Fahrenheit columns are derived at
// insert time.
type ReportMessage struct {
	GatewayIMEI       string    `json:"gateway_imei"`
	PartnerShipmentID string    `json:"partner_shipment_id"`
	Timestamp         time.Time `json:"timestamp"`

	TemperatureC      *float64 `json:"temperature_c"`
	Humidity          *float64 `json:"humidity"`
	Light             *float64 `json:"light"`
	Shock             *float64 `json:"shock"`
	Tilt              *float64 `json:"tilt"`
	Battery           *float64 `json:"battery"`
	Pressure          *float64 `json:"pressure"`
	ProbeTemperatureC *float64 `json:"probe_temperature_c"`
}

// LocationMessage is a GPS fix published separately from sensor
// readings. The processor caches the latest fix per gateway and stamps
// it onto subsequent report entries.
type LocationMessage struct {
	GatewayIMEI string    `json:"gateway_imei"`
	Timestamp   time.Time `json:"timestamp"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Accuracy    *float64  `json:"accuracy"`
}

// ParseReportMessage decodes a report payload, defaulting the timestamp
// to arrival time when the gateway omits it.
func ParseReportMessage(payload []byte) (*ReportMessage, error) {
	var msg ReportMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}

// ParseLocationMessage decodes a location payload.
func ParseLocationMessage(payload []byte) (*LocationMessage, error) {
	var msg LocationMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}

// CelsiusToFahrenheit converts a reading for the dual-scale storage
// columns.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
