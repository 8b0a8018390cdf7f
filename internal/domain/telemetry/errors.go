package telemetry

import "errors"

var (
	ErrAlertNotFound   = errors.New("alert not found")
	ErrNoOpenAlert     = errors.New("no open alert for parameter")
	ErrEmptyBatch      = errors.New("empty report entry batch")
	ErrUnknownShipment = errors.New("no shipment for partner id")
)
