// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"fmt"
	"unicode"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6
)

// ValidationError reports user input that failed a registration check.
// Its message is safe to return to the caller verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationError(msg string) error { return &ValidationError{msg: msg} }

// validatePassword checks the password strength policy. The returned
// message names the first unmet rule.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return validationError(fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	if !hasUpper {
		return validationError("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return validationError("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return validationError("Password must contain at least one number")
	}
	return nil
}
