package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidTenant   = errors.New("invalid tenant id")

	// Slot availability errors
	ErrInvalidDateRange = errors.New("invalid booking date range")

	// Master data errors
	ErrMasterDataValidation  = errors.New("master data validation failed")
	ErrMasterDataUnavailable = errors.New("master data service unavailable")

	// Operation errors
	ErrDatabaseOperationFailed  = errors.New("database operation failed")
	ErrPersisterOperationFailed = errors.New("persister operation failed")
	ErrEncryptionFailed         = errors.New("encryption operation failed")
)
