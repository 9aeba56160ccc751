package model

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned when a storage uniqueness constraint is
	// violated, e.g. a duplicate email.
	ErrConflict = errors.New("resource already exists")
	// ErrUnauthorized covers every authentication failure. Causes are
	// deliberately not distinguishable from the outside.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when an authenticated identity is not the
	// owner of the resource it tries to mutate.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned for malformed input caught before the
	// services run.
	ErrInvalidInput = errors.New("invalid input")
)
