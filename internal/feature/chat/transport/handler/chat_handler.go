// Package handler provides the HTTP handler for the chat feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"devlens_backend/internal/api"
	"devlens_backend/internal/feature/chat/transport/http/dto"
)

// ChatUsecase defines the chat operation the handler depends on.
type ChatUsecase interface {
	Chat(ctx context.Context, message string) (string, error)
}

// ChatHandler handles HTTP requests for the chat assistant.
type ChatHandler struct {
	chat ChatUsecase
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat ChatUsecase) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /chat. Upstream failures surface as 502 so clients can
// distinguish assistant outages from their own mistakes.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), req.Message)
	if err != nil {
		slog.Error("chat request failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Detail: "assistant is unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResp{Response: reply})
}
