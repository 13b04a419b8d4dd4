package service

import "errors"

// Failures the handlers translate into HTTP statuses. Anything else
// escaping a service is a store failure and maps to 500.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidDate        = errors.New("invalid date")
)
