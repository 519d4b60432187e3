package application

import "errors"

var (
	// ErrValidation marks input the service refuses to act on. Handlers
	// map it to 400.
	ErrValidation = errors.New("invalid input")
	// ErrConflict marks an operation against a session or resource in
	// the wrong state. Handlers map it to 409.
	ErrConflict = errors.New("conflict")
)
