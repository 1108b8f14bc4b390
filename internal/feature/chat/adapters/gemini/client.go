// Package gemini provides the Google Gemini backed response generator.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"devlens_backend/internal/feature/chat/usecase"
)

const (
	// DefaultModel is the Gemini model used for chat replies.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiGenerator generates chat replies through the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiGenerator implements ResponseGenerator.
var _ usecase.ResponseGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator using ADC. The environment
// variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION select the credentials.
func NewGeminiGenerator(ctx context.Context) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: DefaultModel}, nil
}

// Generate produces a reply for the prompt.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
