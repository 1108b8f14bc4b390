// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devlens_backend/internal/api"
	"devlens_backend/internal/feature/auth/domain"
	"devlens_backend/internal/feature/auth/domain/entity"
	"devlens_backend/internal/feature/users/transport/http/dto"
	"devlens_backend/internal/feature/users/usecase"
	jwtmw "devlens_backend/internal/platform/jwt"
)

// UsersUsecase defines the user operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UsersUsecase interface {
	// Get returns the target user if the access policy allows it.
	Get(ctx context.Context, actorID, targetID uint) (*entity.User, error)
	// List returns all users for admins, the caller's own row otherwise.
	List(ctx context.Context, actorID uint) ([]entity.User, error)
	// Create persists a user with an explicit role (admin only).
	Create(ctx context.Context, actorID uint, in usecase.CreateUserInput) (*entity.User, error)
}

// UsersHandler handles HTTP requests for user CRUD operations.
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// writeError maps usecase errors onto the HTTP taxonomy:
// 401 unauthenticated, 403 forbidden, 404 not found, 400 validation,
// 500 everything else.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, usecase.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
	default:
		slog.Error("users request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
	}
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid user id"})
		return
	}

	actorID := c.GetUint(jwtmw.ContextUserID)
	user, uerr := h.users.Get(c.Request.Context(), actorID, uint(targetID))
	if uerr != nil {
		writeError(c, uerr)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserItem(user))
}

// List handles GET /users/.
func (h *UsersHandler) List(c *gin.Context) {
	actorID := c.GetUint(jwtmw.ContextUserID)

	users, err := h.users.List(c.Request.Context(), actorID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.UserItem, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserItem(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /users/ (admin only).
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	actorID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.users.Create(c.Request.Context(), actorID, usecase.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("user created", "email", user.Email, "role", user.Role, "actor_id", actorID)
	c.JSON(http.StatusCreated, dto.NewUserItem(user))
}
