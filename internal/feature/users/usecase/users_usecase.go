package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"devlens_backend/internal/feature/auth/domain"
	"devlens_backend/internal/feature/auth/domain/entity"
)

// ErrInvalidRole is returned when a privileged create names a role the
// system does not know.
var ErrInvalidRole = errors.New("Role must be either 'user' or 'admin'")

// UserRepository abstracts the persistence layer for user rows.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
}

// CreateUserInput carries the fields for privileged user creation.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UsersUsecase implements role-gated user lookups and creation.
type UsersUsecase struct {
	users UserRepository
}

// NewUsersUsecase creates a new UsersUsecase.
func NewUsersUsecase(users UserRepository) *UsersUsecase {
	return &UsersUsecase{users: users}
}

// actor resolves the authenticated caller. A caller whose row has
// vanished since token issuance is no longer authenticated.
func (u *UsersUsecase) actor(ctx context.Context, actorID uint) (*entity.User, error) {
	actor, err := u.users.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return actor, nil
}

// Get returns the target user if the access policy allows the actor to
// see it. Policy runs before existence: a denied caller learns nothing
// about whether the target exists.
func (u *UsersUsecase) Get(ctx context.Context, actorID, targetID uint) (*entity.User, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, targetID); err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, targetID)
}

// List returns every user for admins and a single-element slice holding
// the caller's own row otherwise. The narrow result is a filter, not an
// error.
func (u *UsersUsecase) List(ctx context.Context, actorID uint) ([]entity.User, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return u.users.FindAll(ctx)
	}
	return []entity.User{*actor}, nil
}

// Create persists a user with an explicit role. Only admins may do this;
// self-service registration goes through the auth feature instead.
func (u *UsersUsecase) Create(ctx context.Context, actorID uint, in CreateUserInput) (*entity.User, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hashed),
		Role:      role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
