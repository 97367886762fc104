package errs

import "errors"

// Sentinel errors shared across caller boundaries
var (
	// Selection errors
	ErrDatesUnavailable = errors.New("selected dates are unavailable")

	// Configuration errors
	ErrInvalidFeeConfig = errors.New("invalid fee configuration")
)
