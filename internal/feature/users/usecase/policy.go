// Package usecase implements the business logic for the users feature.
package usecase

import (
	"devlens_backend/internal/feature/auth/domain"
	"devlens_backend/internal/feature/auth/domain/entity"
)

// Authorize decides whether the actor may access the target user's data.
// Admins may access anyone; everyone else only themselves. It is a pure
// function: no lookups, no side effects.
func Authorize(actor *entity.User, targetUserID uint) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.ID == targetUserID {
		return nil
	}
	return domain.ErrForbidden
}
