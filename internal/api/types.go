// Package api defines the shared HTTP response envelopes.
package api

// ErrorResponse is the envelope for every error the API returns.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the envelope for bare success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserProfile is the public view of a user. It never carries the
// password hash.
type UserProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserProfile `json:"user"`
}
