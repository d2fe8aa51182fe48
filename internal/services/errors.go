package services

import "errors"

// Sentinel errors shared by all services. Handlers translate these into HTTP
// status codes; nothing below the handler layer knows about HTTP.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrPrecondition = errors.New("precondition failed")
	ErrUnauthorized = errors.New("unauthorized")
)
