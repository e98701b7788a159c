package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (a missing artifact, an unknown roster entry).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. an unsafe artifact name, an empty email list).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange is returned when a sign-in sheet is requested with a day
// count outside [MinDays, MaxDays]. It wraps ErrValidation, so handlers that
// only check for ErrValidation still map it to 422.
var ErrInvalidRange = fmt.Errorf("%w: day count out of range", ErrValidation)

// ErrMalformedDocument is returned by the renderer when a TableDocument breaks
// its structural invariants (ragged rows, spans outside row 0). It signals a
// bug in the layout code, not bad user input, and should be logged loudly.
var ErrMalformedDocument = errors.New("malformed document")

// ErrConflict is returned when an artifact with the same name already exists.
// Artifact names carry a second-resolution timestamp, so two generations in
// the same second collide. Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
