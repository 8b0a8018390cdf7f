package shipment

import (
	"strings"

	domainShipment "shipment-dashboard/internal/domain/shipment"
	appErrors "shipment-dashboard/pkg/errors"
)

// ParseStatus validates and canonicalizes a status string. Input casing
// is accepted loosely; storage always uses the canonical form.
func ParseStatus(raw string) (domainShipment.ShipmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "planned":
		return domainShipment.StatusPlanned, nil
	case "enroute":
		return domainShipment.StatusEnroute, nil
	case "completed":
		return domainShipment.StatusCompleted, nil
	case "cancelled":
		return domainShipment.StatusCancelled, nil
	default:
		return "", domainShipment.ErrInvalidStatus
	}
}

// ValidateTimeRange rejects an estimated arrival before the estimated
// departure. Either side may be absent.
func ValidateTimeRange(req *CreateShipmentRequest) error {
	if req.EstimatedDeparture != nil && req.EstimatedArrival != nil &&
		req.EstimatedArrival.Before(*req.EstimatedDeparture) {
		return appErrors.NewAppError("INVALID_TIME_RANGE", "Estimated arrival precedes estimated departure", nil)
	}
	return nil
}

// ValidateBounds rejects threshold pairs where a minimum exceeds its
// maximum.
func ValidateBounds(req *CreateShipmentRequest) error {
	for _, b := range []*BoundsRequest{req.Temperature, req.Humidity, req.Shock, req.Light} {
		if b == nil {
			continue
		}
		if b.MinWarning != nil && b.MaxWarning != nil && *b.MinWarning > *b.MaxWarning {
			return appErrors.NewAppError("INVALID_BOUNDS", "Warning minimum exceeds maximum", nil)
		}
		if b.MinExcursion != nil && b.MaxExcursion != nil && *b.MinExcursion > *b.MaxExcursion {
			return appErrors.NewAppError("INVALID_BOUNDS", "Excursion minimum exceeds maximum", nil)
		}
	}
	return nil
}
