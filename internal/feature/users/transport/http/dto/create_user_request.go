// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for the admin-only POST /users/ endpoint.
type CreateUserReq struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role"`
}
