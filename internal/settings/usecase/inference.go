package usecase

import (
	"context"
	"fmt"
	"strings"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
)

func (uc *implUseCase) SetTemperature(ctx context.Context, sc model.Scope, value float64) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "set_temp"); err != nil {
		return settings.State{}, err
	}
	if value < settings.MinTemperature || value > settings.MaxTemperature {
		return uc.store.Snapshot(), fmt.Errorf("%w: temperature must be between %.0f and %.0f",
			settings.ErrInvalidValue, settings.MinTemperature, settings.MaxTemperature)
	}

	state, _ := uc.store.Update(func(s *settings.State) error {
		s.Temperature = value
		return nil
	})

	uc.l.Info(ctx, "settings.SetTemperature: temperature changed", "temperature", value, "user_id", sc.UserID)
	return state, nil
}

func (uc *implUseCase) SetMaxTokens(ctx context.Context, sc model.Scope, value int) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "set_max_tokens"); err != nil {
		return settings.State{}, err
	}
	if value <= 0 {
		return uc.store.Snapshot(), fmt.Errorf("%w: max tokens must be positive", settings.ErrInvalidValue)
	}

	state, _ := uc.store.Update(func(s *settings.State) error {
		s.MaxTokens = value
		return nil
	})

	uc.l.Info(ctx, "settings.SetMaxTokens: max tokens changed", "max_tokens", value, "user_id", sc.UserID)
	return state, nil
}

// SetMemoryLimit changes the exchange bound. Histories shrink on their next append.
func (uc *implUseCase) SetMemoryLimit(ctx context.Context, sc model.Scope, value int) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "set_memory"); err != nil {
		return settings.State{}, err
	}
	if value < 1 {
		return uc.store.Snapshot(), fmt.Errorf("%w: memory must be at least 1", settings.ErrInvalidValue)
	}

	state, _ := uc.store.Update(func(s *settings.State) error {
		s.MemoryLimit = value
		return nil
	})

	uc.l.Info(ctx, "settings.SetMemoryLimit: memory changed", "memory_limit", value, "user_id", sc.UserID)
	return state, nil
}

// SetSystemPrompt replaces the prompt and clears histories so they reseed with it.
func (uc *implUseCase) SetSystemPrompt(ctx context.Context, sc model.Scope, prompt string) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "set_system_prompt"); err != nil {
		return settings.State{}, err
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return uc.store.Snapshot(), fmt.Errorf("%w: system prompt is empty", settings.ErrInvalidValue)
	}

	state, _ := uc.store.Update(func(s *settings.State) error {
		s.SystemPrompt = prompt
		return nil
	})
	uc.memory.ResetAll(ctx)

	uc.l.Info(ctx, "settings.SetSystemPrompt: system prompt changed", "length", len(prompt), "user_id", sc.UserID)
	return state, nil
}
