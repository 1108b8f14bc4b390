package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"devlens_backend/internal/feature/auth/domain"
	"devlens_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. The store's unique index on email is the
	// authoritative duplicate guard; Create returns domain.ErrEmailAlreadyExists
	// when it fires.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email address.
	// It returns domain.ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// It returns domain.ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the interface for access token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthUsecase implements registration, login, and self lookup.
type AuthUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *AuthUsecase {
	return &AuthUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// Register creates a new user with a bcrypt-hashed password and the
// default role. Checks run in a fixed order so the first failure wins:
// confirm-password mismatch, strength policy, duplicate email.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, validationError("Passwords do not match")
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	// Pre-check is an optimization for a friendly error; the unique index
	// still guards the race between check and insert.
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
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
		Role:      entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed token with the user.
// To mitigate timing attacks, a bcrypt comparison runs even when the
// email is unknown.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword always executes.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// One generic error for both unknown email and wrong password.
	if err != nil || compareErr != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}

// CurrentUser resolves a token subject to its user row. A subject whose
// row has vanished since issuance is no longer authenticated.
func (u *AuthUsecase) CurrentUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
