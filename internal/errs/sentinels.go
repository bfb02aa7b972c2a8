// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrWeakPassword indicates the password failed the strength policy.
	ErrWeakPassword = errors.New("weak password")

	// ErrConflict indicates a lost race on a slot claim; the attempt may be retried.
	ErrConflict = errors.New("conflict")

	// ErrNoCaregiverAvailable indicates no open slot exists for the requested day.
	ErrNoCaregiverAvailable = errors.New("no caregiver available")

	// ErrInsufficientDoses indicates the vaccine is unknown or its inventory is exhausted.
	ErrInsufficientDoses = errors.New("insufficient doses")
)
