// Package domain defines domain-level errors for the user aggregate.
package domain

import "errors"

// Domain errors shared by the auth and users features. Their messages are
// safe to surface to API callers verbatim.
var (
	// ErrUserNotFound indicates that no user matched the given criteria.
	ErrUserNotFound = errors.New("User not found")

	// ErrEmailAlreadyExists indicates a duplicate registration attempt.
	ErrEmailAlreadyExists = errors.New("This email is already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a caller cannot enumerate registered users.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrUnauthenticated indicates a missing or invalid identity, including
	// a token whose subject row no longer exists.
	ErrUnauthenticated = errors.New("Could not validate credentials")

	// ErrForbidden indicates an authenticated caller that the access policy
	// denies. Distinct from ErrUnauthenticated: the caller is known, just
	// not allowed.
	ErrForbidden = errors.New("Not authorized to access this resource")
)
