// api/errors/validation_errors.go
package errors

import "errors"

var (
	ErrResourceNotFound        = errors.New("resource not found")
	ErrAllocationNotFound      = errors.New("allocation not found")
	ErrInvalidAllocationData   = errors.New("invalid allocation data")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidPercentage       = errors.New("allocation percentage out of range")
	ErrReportNotFound          = errors.New("validation report not found")
	ErrDatabaseOperation       = errors.New("database operation failed")
	ErrInternalServer          = errors.New("internal server error")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidValidationTarget = errors.New("invalid validation target")
)
