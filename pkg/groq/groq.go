package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Groq exposes an OpenAI compatible endpoint, so the go-openai client is pointed at its base URL.
type groqImpl struct {
	client *openai.Client
	model  string
}

func newClient(cfg Config) *groqImpl {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &groqImpl{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (g *groqImpl) Model() string {
	return g.model
}

// CreateChatCompletion sends req, filling the model when unset. HTTP 429 is reported as ErrRateLimited.
func (g *groqImpl) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if req.Model == "" {
		req.Model = g.model
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if isRateLimit(err) {
			return openai.ChatCompletionResponse{}, fmt.Errorf("%w: model %s: %v", ErrRateLimited, req.Model, err)
		}
		return openai.ChatCompletionResponse{}, fmt.Errorf("groq chat completion (model %s): %w", req.Model, err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionResponse{}, ErrEmptyResponse
	}

	return resp, nil
}

func isRateLimit(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
