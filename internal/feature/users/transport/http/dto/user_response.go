package dto

import "devlens_backend/internal/feature/auth/domain/entity"

// UserItem is the wire representation of a user row. The password hash
// never appears here.
type UserItem struct {
	UserID    uint   `json:"user_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// NewUserItem maps a user entity to its wire representation.
func NewUserItem(u *entity.User) UserItem {
	return UserItem{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}
