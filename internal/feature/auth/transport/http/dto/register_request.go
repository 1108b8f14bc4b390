// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// Gin's binding tags cover shape and format; the password policy itself
// lives in the usecase so its messages can name the unmet rule.
type RegisterReq struct {
	FirstName       string `json:"firstName" binding:"required,max=50"`
	LastName        string `json:"lastName" binding:"required,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
