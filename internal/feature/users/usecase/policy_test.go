package usecase

import (
	"errors"
	"testing"

	"devlens_backend/internal/feature/auth/domain"
	"devlens_backend/internal/feature/auth/domain/entity"
)

// TestAuthorize covers the full policy truth table.
func TestAuthorize(t *testing.T) {
	t.Parallel()

	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}
	user5 := &entity.User{ID: 5, Role: entity.RoleUser}

	tests := []struct {
		name     string
		actor    *entity.User
		targetID uint
		allowed  bool
	}{
		{"admin may access any user", admin, 42, true},
		{"admin may access self", admin, 1, true},
		{"user may access self", user5, 5, true},
		{"user may not access another user", user5, 6, false},
		{"user may not access admin", user5, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Authorize(tt.actor, tt.targetID)
			if tt.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, domain.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}
