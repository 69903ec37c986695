package gemini

import (
	"context"

	"google.golang.org/genai"
)

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request. An empty model uses the configured default.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

	// GenerateImage asks an image capable model for a picture matching prompt.
	GenerateImage(ctx context.Context, model, prompt string) (*Image, error)

	// Model returns the default model
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}
