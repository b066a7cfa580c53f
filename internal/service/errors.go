package service

import "errors"

// Sentinel errors returned by service methods. Callers should match with
// [errors.Is]; field-level validation failures are returned as
// validators.FieldErrors instead.
var (
	// ErrNoFieldsToUpdate is returned when a partial update carries no
	// fields at all. The request is rejected before any query is issued.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrHashingPassword is returned when the password hash cannot be
	// produced (e.g. an out-of-range bcrypt cost).
	ErrHashingPassword = errors.New("error hashing password")
)
