// services/errors.go
package services

import "errors"

// Validation failures are recoverable and local: controllers report them to
// the client and leave state untouched.
var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidEntry     = errors.New("invalid entry")
	ErrNotFound         = errors.New("not found")
	ErrImportValidation = errors.New("import validation failed")
)
