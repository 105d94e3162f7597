package domain

import "errors"

// ErrNotFound is returned by service functions when the requested trip, day,
// or nested entity does not exist. The repository itself never returns it:
// its mutations report a miss as a false result and change nothing.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
