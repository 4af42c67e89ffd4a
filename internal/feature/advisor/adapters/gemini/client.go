// Package gemini provides the Google Gemini chat model adapter.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"tradetracker/internal/feature/advisor/usecase"
)

const (
	// DefaultModel is the Gemini model used unless overridden.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiModel generates advisor replies via the Google Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiModel implements ChatModel.
var _ usecase.ChatModel = (*GeminiModel)(nil)

// NewGeminiModel creates a GeminiModel using application default
// credentials. GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION configure the underlying client.
func NewGeminiModel(ctx context.Context) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiModel{client: client, model: DefaultModel}, nil
}

// Generate produces a completion for the prompt.
func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
