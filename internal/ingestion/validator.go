package ingestion

import "fmt"

// ValidationError reports a rejected field in an incoming message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// ValidateReport checks a report message before it enters the pipeline.
func ValidateReport(msg *ReportMessage) error {
	if msg.GatewayIMEI == "" {
		return &ValidationError{Field: "gateway_imei", Message: "gateway_imei is required"}
	}
	if len(msg.GatewayIMEI) < 8 || len(msg.GatewayIMEI) > 32 {
		return &ValidationError{Field: "gateway_imei", Message: "gateway_imei must be 8-32 characters"}
	}
	if msg.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Message: "timestamp is required"}
	}

	if msg.TemperatureC != nil {
		if *msg.TemperatureC < -100 || *msg.TemperatureC > 100 {
			return &ValidationError{Field: "temperature_c", Message: "temperature_c must be between -100 and 100"}
		}
	}
	if msg.ProbeTemperatureC != nil {
		if *msg.ProbeTemperatureC < -200 || *msg.ProbeTemperatureC > 200 {
			return &ValidationError{Field: "probe_temperature_c", Message: "probe_temperature_c must be between -200 and 200"}
		}
	}
	if msg.Humidity != nil {
		if *msg.Humidity < 0 || *msg.Humidity > 100 {
			return &ValidationError{Field: "humidity", Message: "humidity must be between 0 and 100"}
		}
	}
	if msg.Light != nil && *msg.Light < 0 {
		return &ValidationError{Field: "light", Message: "light must be non-negative"}
	}
	if msg.Shock != nil {
		if *msg.Shock < 0 || *msg.Shock > 50 {
			return &ValidationError{Field: "shock", Message: "shock must be between 0 and 50"}
		}
	}
	if msg.Tilt != nil {
		if *msg.Tilt < 0 || *msg.Tilt > 180 {
			return &ValidationError{Field: "tilt", Message: "tilt must be between 0 and 180"}
		}
	}
	if msg.Battery != nil {
		if *msg.Battery < 0 || *msg.Battery > 100 {
			return &ValidationError{Field: "battery", Message: "battery must be between 0 and 100"}
		}
	}
	if msg.Pressure != nil && *msg.Pressure < 0 {
		return &ValidationError{Field: "pressure", Message: "pressure must be non-negative"}
	}

	return nil
}

// ValidateLocation checks a location message. Out-of-range coordinates
// are rejected at the door rather than stored as non-positional.
func ValidateLocation(msg *LocationMessage) error {
	if msg.GatewayIMEI == "" {
		return &ValidationError{Field: "gateway_imei", Message: "gateway_imei is required"}
	}
	if msg.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Message: "timestamp is required"}
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}
	return nil
}
