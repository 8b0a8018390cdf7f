package preference

import "errors"

var (
	ErrUnitNotFound      = errors.New("unit of measure not found")
	ErrDuplicateCategory = errors.New("duplicate unit of measure category")
)
