package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type geminiImpl struct {
	client *genai.Client
	model  string
}

func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiImpl{client: client, model: cfg.Model}, nil
}

func (g *geminiImpl) Model() string {
	return g.model
}

// GenerateContent calls models.generateContent. HTTP 429 is reported as ErrRateLimited.
func (g *geminiImpl) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if model == "" {
		model = g.model
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		if isRateLimit(err) {
			return nil, fmt.Errorf("%w: model %s: %v", ErrRateLimited, model, err)
		}
		return nil, fmt.Errorf("gemini generate content (model %s): %w", model, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	return resp, nil
}

// GenerateImage requests TEXT and IMAGE modalities and returns the first inline image.
func (g *geminiImpl) GenerateImage(ctx context.Context, model, prompt string) (*Image, error) {
	if model == "" {
		model = DefaultImageModel
	}

	resp, err := g.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{ResponseModalities: []string{"TEXT", "IMAGE"}},
	)
	if err != nil {
		return nil, err
	}

	img := &Image{}
	var text []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.Text != "" && !part.Thought {
			text = append(text, part.Text)
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 && img.Data == nil {
			img.MIMEType = part.InlineData.MIMEType
			img.Data = part.InlineData.Data
		}
	}
	img.Text = strings.Join(text, "\n")

	if img.Data == nil {
		return nil, ErrNoImage
	}
	return img, nil
}

func isRateLimit(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusTooManyRequests
	}
	return false
}
