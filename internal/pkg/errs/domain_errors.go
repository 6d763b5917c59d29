package errs

import "errors"

// Sentinel errors shared by the command and query layers. Handlers branch on
// these with errors.Is; the cause chain carries the details.
var (
	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingConflict         = errors.New("booking conflict")
	ErrNotBookingHolder        = errors.New("booking belongs to a different holder")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")

	// Validation errors
	ErrInvalidStayRange  = errors.New("invalid stay range")
	ErrInvalidListFilter = errors.New("invalid list filter")

	// Quote errors
	ErrDatesUnavailable = errors.New("requested dates are not available")
	ErrNoCachedQuote    = errors.New("no cached quote for holder")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
