package preference

import (
	"time"

	"github.com/google/uuid"

	domainPreference "shipment-dashboard/internal/domain/preference"
)

// UnitRequest is one unit-of-measure record in a replace payload.
type UnitRequest struct {
	UnitOfMeasureFor string `json:"unit_of_measure_for" validate:"required,max=64"`
	UnitOfMeasure    string `json:"unit_of_measure" validate:"required,max=64"`
}

// ReplaceUnitsRequest swaps an organization's full unit-of-measure set.
type ReplaceUnitsRequest struct {
	Units []UnitRequest `json:"units" validate:"required,dive"`
}

// UnitResponse is one configured display unit.
type UnitResponse struct {
	ID               uuid.UUID `json:"id"`
	UnitOfMeasureFor string    `json:"unit_of_measure_for"`
	UnitOfMeasure    string    `json:"unit_of_measure"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DisplayResponse is the resolved display configuration for an
// organization, consumed by the front-end on load.
type DisplayResponse struct {
	DateFormat      string `json:"date_format"`
	TimeFormat      string `json:"time_format"`
	TemperatureUnit string `json:"temperature_unit"`
	DistanceUnit    string `json:"distance_unit"`
	Timezone        string `json:"timezone"`
}

func ToUnitResponse(u *domainPreference.UnitOfMeasure) *UnitResponse {
	return &UnitResponse{
		ID:               u.ID,
		UnitOfMeasureFor: u.UnitOfMeasureFor,
		UnitOfMeasure:    u.UnitOfMeasure,
		UpdatedAt:        u.UpdatedAt,
	}
}

func ToDisplayResponse(d *Display) *DisplayResponse {
	return &DisplayResponse{
		DateFormat:      d.DateFormat,
		TimeFormat:      d.TimeFormat,
		TemperatureUnit: d.TemperatureUnit,
		DistanceUnit:    d.DistanceUnit,
		Timezone:        d.TimezoneName,
	}
}
