package custodian

import "errors"

var (
	ErrCustodianNotFound = errors.New("custodian not found")
	ErrContactNotFound   = errors.New("contact not found")
	ErrCustodyNotFound   = errors.New("custody not found")
	ErrCustodianInUse    = errors.New("custodian has custody records and cannot be deleted")
)
