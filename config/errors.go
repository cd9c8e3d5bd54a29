package config

import "errors"

// Sentinel errors. Parse and Load wrap them with the underlying decoder or
// validator error, so both errors.Is and errors.As work on the result.
var (
	// ErrDecode is returned when the document is not valid YAML or names an
	// unknown key.
	ErrDecode = errors.New("config: decode failed")

	// ErrInvalid is returned when a decoded configuration fails validation.
	// The wrapped error is a validator.ValidationErrors.
	ErrInvalid = errors.New("config: invalid configuration")
)
