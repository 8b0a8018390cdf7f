package shipment

import "errors"

var (
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrInvalidStatus      = errors.New("invalid shipment status")
	ErrDuplicatePartnerID = errors.New("partner shipment id already in use")
	ErrShipmentEnroute    = errors.New("shipment is enroute and cannot be deleted")
)
