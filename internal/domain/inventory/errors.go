package inventory

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrProductNotFound = errors.New("product not found")
	ErrGatewayNotFound = errors.New("gateway not found")
	ErrSensorNotFound  = errors.New("sensor not found")
	ErrDuplicateIMEI   = errors.New("gateway imei already registered")
)
