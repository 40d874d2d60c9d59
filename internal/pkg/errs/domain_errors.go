package errs

import "errors"

// Sentinel errors shared across the usecase layers.
var (
	// Catalog errors
	ErrDealNotFound = errors.New("deal not found")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidSort  = errors.New("invalid sort key")

	// Redemption errors
	ErrWrongDealType = errors.New("action not defined for deal type")

	// Validation errors
	ErrValidationFailure = errors.New("validation failure")

	// Verification task errors
	ErrVerificationPending = errors.New("verification already in progress")
	ErrUnknownVerification = errors.New("unknown verification kind")
)
