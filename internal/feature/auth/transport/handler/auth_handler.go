// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devlens_backend/internal/api"
	"devlens_backend/internal/feature/auth/domain"
	"devlens_backend/internal/feature/auth/domain/entity"
	"devlens_backend/internal/feature/auth/transport/http/dto"
	"devlens_backend/internal/feature/auth/usecase"
	jwtmw "devlens_backend/internal/platform/jwt"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with the default role.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login authenticates a user and returns a token with the user.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// CurrentUser resolves a token subject to its user row.
	CurrentUser(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// profileOf maps a user to its public profile.
func profileOf(u *entity.User) api.UserProfile {
	return api.UserProfile{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Register handles the user registration endpoint.
// - 400 on malformed input, mismatched or weak passwords, duplicate email
// - 201 with the created profile on success (never the hash)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var ve *usecase.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: ve.Error()})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to create user"})
		}
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.RegisterResponse{
		Message: "Registration successful!",
		User:    profileOf(user),
	})
}

// Login handles the user login endpoint.
// - 400 on malformed input
// - 401 with one generic message for unknown email or wrong password
// - 200 with a bearer token and the user's profile on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: err.Error()})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "login failed"})
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        profileOf(user),
	})
}

// Me returns the authenticated user's profile. A token whose subject
// row no longer exists gets 401, the same as an invalid token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: err.Error()})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, profileOf(user))
}

// Logout acknowledges a logout. Tokens are not tracked server-side, so
// the only effect is the client discarding its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Successfully logged out"})
}
