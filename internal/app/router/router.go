// Package router wires the HTTP routes for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "devlens_backend/internal/feature/analysis/transport/handler"
	authhandler "devlens_backend/internal/feature/auth/transport/handler"
	chathandler "devlens_backend/internal/feature/chat/transport/handler"
	usershandler "devlens_backend/internal/feature/users/transport/handler"
	"devlens_backend/internal/platform/config"
	"devlens_backend/internal/platform/http/handler"
	jwtmw "devlens_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg *config.Config, authH *authhandler.AuthHandler, usersH *usershandler.UsersHandler,
	analysisH *analysishandler.AnalysisHandler, chatH *chathandler.ChatHandler) *gin.Engine {
	r := gin.Default()

	// The browser frontend runs on a different origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)
	r.POST("/auth/logout", authH.Logout)
	// The assistant is open, as the frontend calls it before login.
	r.POST("/chat", chatH.Chat)

	// Token-protected routes
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(cfg.JWTSecret))
	{
		auth.GET("/auth/me", authH.Me)

		auth.GET("/users/", usersH.List)
		auth.GET("/users/:id", usersH.Get)
		auth.POST("/users/", usersH.Create)

		auth.POST("/repositories", analysisH.CreateRepository)
		auth.GET("/repositories", analysisH.ListRepositories)
		auth.GET("/repositories/:id", analysisH.GetRepository)
		auth.POST("/repositories/:id/reports", analysisH.CreateReport)
		auth.GET("/repositories/:id/reports", analysisH.ListReports)

		auth.POST("/comparisons", analysisH.CreateComparison)
		auth.GET("/comparisons", analysisH.ListComparisons)
	}

	return r
}
