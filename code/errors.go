package code

import "errors"

// Domain errors for block code operations.
//
// These are the only two caller-visible error kinds of the engine; both are
// reported synchronously at the API boundary before any computation runs,
// and both match with errors.Is after wrapping.
var (
	// ErrInvalidInput indicates a malformed data word or codeword: wrong
	// length, or a bit value other than 0 or 1.
	ErrInvalidInput = errors.New("code: invalid input")

	// ErrInvalidParameter indicates a parameter outside its declared range,
	// such as an error-injection rate outside [0, 1].
	ErrInvalidParameter = errors.New("code: invalid parameter")
)
