package cpkit

import "errors"

// Error taxonomy shared by all subpackages. Package-level sentinels wrap one
// of these, so callers may test either the precise or the generic error.
var (
	// ErrEmpty indicates a pop or peek on an empty container.
	ErrEmpty = errors.New("cpkit: container is empty")

	// ErrInvalidArgument indicates an argument outside the documented domain
	// (negative exponent, non-positive modulus, out-of-range index).
	ErrInvalidArgument = errors.New("cpkit: invalid argument")
)
