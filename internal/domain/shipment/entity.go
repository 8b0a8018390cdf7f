package shipment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus represents the lifecycle status of a shipment.
type ShipmentStatus string

const (
	StatusPlanned   ShipmentStatus = "Planned"
	StatusEnroute   ShipmentStatus = "Enroute"
	StatusCompleted ShipmentStatus = "Completed"
	StatusCancelled ShipmentStatus = "Cancelled"
)

// Group buckets used by the dashboard's shipment table tabs.
const (
	GroupActive    = "Active"
	GroupCompleted = "Completed"
	GroupCancelled = "Cancelled"
)

// Group maps a status to its coarse dashboard bucket. Matching is
// case-insensitive; an unrecognized status maps to the empty group and the
// row stays visible as unbucketed.
func (s ShipmentStatus) Group() string {
	switch strings.ToLower(string(s)) {
	case "planned", "enroute":
		return GroupActive
	case "completed":
		return GroupCompleted
	case "cancelled":
		return GroupCancelled
	default:
		return ""
	}
}

// MetricBounds holds the configured warning and excursion thresholds for
// one sensor metric. Nil means no bound configured.
type MetricBounds struct {
	MinWarning   *float64
	MaxWarning   *float64
	MinExcursion *float64
	MaxExcursion *float64
}

// Shipment is a tracked shipping order.
type Shipment struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Status         ShipmentStatus

	// PartnerShipmentID joins the shipment to its sensor reports and
	// alerts, which arrive keyed by the tracking partner's identifier.
	PartnerShipmentID string

	Origin      string
	Destination string

	EstimatedDeparture *time.Time
	EstimatedArrival   *time.Time
	ActualDeparture    *time.Time
	ActualArrival      *time.Time

	ItemIDs      []uuid.UUID
	GatewayIMEIs []string

	HadAlert bool

	// Alerting thresholds evaluated by the ingestion alert engine.
	// Temperature bounds are in Celsius.
	Temperature MetricBounds
	Humidity    MetricBounds
	Shock       MetricBounds
	Light       MetricBounds

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter represents listing options for shipments.
type Filter struct {
	OrganizationID uuid.UUID
	Status         *ShipmentStatus
	GatewayIMEI    string
	Search         string

	Page     int
	PageSize int
}
