package preference

import (
	"time"

	"github.com/google/uuid"
)

// Categories a unit-of-measure record can configure. Category matching is
// case-insensitive everywhere.
const (
	CategoryDate        = "Date"
	CategoryTime        = "Time"
	CategoryTemperature = "Temperature"
	CategoryDistance    = "Distance"
	CategoryTimezone    = "Time Zone"
)

// UnitOfMeasure maps a display category to the value an organization wants
// shown, e.g. ("Temperature", "Fahrenheit") or ("Date", "MM/DD/YYYY").
type UnitOfMeasure struct {
	ID               uuid.UUID
	OrganizationID   uuid.UUID
	UnitOfMeasureFor string
	UnitOfMeasure    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
