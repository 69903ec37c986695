package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/elliotchance/pie/v2"

	"discord-llm-bot/pkg/log"
)

// Log messages
const (
	LogMsgGenerationSuccess = "LLM generation successful"
	LogMsgGenerationFailed  = "LLM generation failed"
	LogMsgRateLimitCooldown = "LLM rate limited, cooling down before next model"
)

// Manager runs one provider through a model fallback chain with retry and rate limit cooldown.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	FallbackModels  []string
	RetryAttempts   int
	RetryDelay      time.Duration
	Cooldown        time.Duration // wait after a rate limit before the next model
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager for provider
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Name returns the wrapped provider's name.
func (m *Manager) Name() string {
	return m.provider.Name()
}

// Model returns the wrapped provider's default model.
func (m *Manager) Model() string {
	return m.provider.Model()
}

// Models returns the chain tried for a request targeting primary.
func (m *Manager) Models(primary string) []string {
	if primary == "" {
		primary = m.provider.Model()
	}
	models := []string{primary}
	for _, model := range m.config.FallbackModels {
		if model != "" && !pie.Contains(models, model) {
			models = append(models, model)
		}
	}
	return models
}

// GenerateContent walks the model chain. A rate limited model is followed by one cooldown wait
// and then the next model. Other failures move on only when fallback is enabled.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil {
		return nil, ErrInvalidRequest
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	models := m.Models(req.Model)
	var lastErr error

	for i, model := range models {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d model(s): %w", i, ctx.Err())
		default:
		}

		attempt := *req
		attempt.Model = model

		resp, err := m.generateWithRetry(ctx, &attempt)
		if err == nil {
			m.logSuccess(ctx, model, resp)
			return resp, nil
		}

		m.logFailure(ctx, model, err)
		lastErr = err

		last := i == len(models)-1
		if last {
			break
		}

		if IsRateLimited(err) {
			if err := m.cooldown(ctx, model, models[i+1]); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
			}
			continue
		}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries non rate limit failures with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := m.provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if IsRateLimited(err) {
			break
		}
	}

	return nil, lastErr
}

func (m *Manager) cooldown(ctx context.Context, model, next string) error {
	m.logger.Warn(ctx, LogMsgRateLimitCooldown,
		"provider", m.provider.Name(),
		"model", model,
		"next_model", next,
		"cooldown", m.config.Cooldown.String(),
	)

	if m.config.Cooldown <= 0 {
		return nil
	}

	timer := time.NewTimer(m.config.Cooldown)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, model string, resp *Response) {
	inputTokens, outputTokens := 0, 0
	if resp.Usage != nil {
		inputTokens, outputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, LogMsgGenerationSuccess,
		"provider", m.provider.Name(),
		"model", model,
		"input_tokens", inputTokens,
		"output_tokens", outputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, model string, err error) {
	m.logger.Warn(ctx, LogMsgGenerationFailed,
		"provider", m.provider.Name(),
		"model", model,
		"error", err.Error(),
	)
}
