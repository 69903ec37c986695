package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"discord-llm-bot/config"
	"discord-llm-bot/pkg/gemini"
	"discord-llm-bot/pkg/groq"
	"discord-llm-bot/pkg/log"
)

// InitializeManagers builds one Manager per enabled backend, sorted by priority.
// A backend that fails to initialize (most often a missing API key) is logged once and skipped;
// the call only fails when no backend is usable.
func InitializeManagers(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) ([]*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}
	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var managers []*Manager
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			logger.Warnf(ctx, "llmprovider.InitializeManagers: %s", errMsg)
			continue
		}

		managers = append(managers, NewManager(provider, &Config{
			FallbackEnabled: cfg.FallbackEnabled,
			FallbackModels:  p.FallbackModels,
			RetryAttempts:   cfg.RetryAttempts,
			RetryDelay:      cfg.RetryDelay,
			Cooldown:        cfg.RateLimitCooldown,
			MaxTotalTimeout: cfg.MaxTotalTimeout,
		}, logger))
	}

	if len(managers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProvidersConfigured, strings.Join(initErrors, "; "))
	}

	return managers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: provider %s: API key is required", ErrConfigMissing, cfg.Name)
	}

	switch cfg.Name {
	case ProviderGroq:
		client, err := groq.New(groq.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	case ProviderGemini:
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
