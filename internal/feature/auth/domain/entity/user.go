// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"column:user_id;primaryKey"`

	// FirstName is the user's given name.
	FirstName string `gorm:"column:firstname;size:50;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"column:lastname;size:50;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:100;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is either RoleUser or RoleAdmin.
	Role string `gorm:"size:50;not null;default:user"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// TableName keeps the table name aligned with the existing schema.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
