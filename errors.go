package guid

import "errors"

var (
	// ErrInvalidFormat indicates that the GUID string format is invalid
	ErrInvalidFormat = errors.New("guid: invalid GUID format")

	// ErrEntropy indicates that the entropy source could not supply 16 bytes
	ErrEntropy = errors.New("guid: entropy read failed")
)

// errUninitialized is the panic message for generating before entropy.Init.
const errUninitialized = "guid: library uninitialized"
