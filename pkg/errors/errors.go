package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrUnauthorized            = errors.New("unauthorized access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	ErrInvalidInput    = errors.New("invalid input data")
	ErrMissingOrg      = errors.New("organization not present in token")
	ErrInvalidID       = errors.New("invalid identifier")
	ErrDuplicateRecord = errors.New("record already exists")

	ErrImportEmptyFile   = errors.New("import file is empty")
	ErrImportUnsupported = errors.New("unsupported import file type")
	ErrExportNoData      = errors.New("no data available for export")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
