package histviz

import "errors"

// All binning failures are input-validation failures and are surfaced
// synchronously to the caller. Match them with errors.Is.
var (
	// ErrInvalidInput marks an empty sample, a non-finite sample value or
	// malformed bin edges.
	ErrInvalidInput = errors.New("histviz: invalid input")

	// ErrInvalidRule marks an unrecognized binning rule.
	ErrInvalidRule = errors.New("histviz: invalid rule")

	// ErrInvalidParameter marks a missing or out-of-range rule parameter.
	ErrInvalidParameter = errors.New("histviz: invalid parameter")
)
