package service

import "errors"

// Error kinds mapped to HTTP status codes at the handler boundary.
// ErrNotFound deliberately covers both "no such record" and "record owned by
// someone else" so a caller cannot probe for other users' ids.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
