package domain

import "errors"

// ErrValidation is returned when input fails a business rule (e.g. a request
// body that cannot be decoded into a trip aggregate).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
