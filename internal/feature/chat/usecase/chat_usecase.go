// Package usecase implements the chat assistant logic.
package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxMessageLength is the maximum chat message length in runes.
	MaxMessageLength = 2000
)

// ResponseGenerator produces an assistant reply for a prompt.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapter).
type ResponseGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatUsecase validates messages and delegates to the generator.
type ChatUsecase struct {
	generator ResponseGenerator
}

// NewChatUsecase creates a new ChatUsecase.
func NewChatUsecase(generator ResponseGenerator) *ChatUsecase {
	return &ChatUsecase{generator: generator}
}

// Chat returns the assistant reply for a user message.
func (u *ChatUsecase) Chat(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return "", fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}

	reply, err := u.generator.Generate(ctx, message)
	if err != nil {
		return "", fmt.Errorf("response generator failed: %w", err)
	}
	return reply, nil
}
