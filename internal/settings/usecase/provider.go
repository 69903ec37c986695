package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/elliotchance/pie/v2"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
)

// SelectProvider switches the active backend. A real switch also moves to the
// backend's default model and clears every history.
func (uc *implUseCase) SelectProvider(ctx context.Context, sc model.Scope, provider string) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "select_provider"); err != nil {
		return settings.State{}, err
	}

	provider = strings.ToLower(strings.TrimSpace(provider))
	if !pie.Contains(settings.Providers, provider) {
		return uc.store.Snapshot(), fmt.Errorf("%w: %q, available providers: %s",
			settings.ErrInvalidProvider, provider, strings.Join(settings.Providers, ", "))
	}

	changed := false
	state, _ := uc.store.Update(func(s *settings.State) error {
		if s.ActiveProvider == provider {
			return nil
		}
		changed = true
		s.ActiveProvider = provider
		s.Model = settings.DefaultModels[provider]
		return nil
	})

	if changed {
		uc.memory.ResetAll(ctx)
	}

	uc.l.Info(ctx, "settings.SelectProvider: provider changed",
		"provider", state.ActiveProvider,
		"model", state.Model,
		"user_id", sc.UserID,
	)
	return state, nil
}

// SetModel accepts only models on the active provider's allow-list.
func (uc *implUseCase) SetModel(ctx context.Context, sc model.Scope, name string) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "set_model"); err != nil {
		return settings.State{}, err
	}

	name = strings.TrimSpace(name)
	state, err := uc.store.Update(func(s *settings.State) error {
		if !pie.Contains(settings.AllowedModels[s.ActiveProvider], name) {
			return fmt.Errorf("%w: %q is not available for %s, allowed models: %s",
				settings.ErrInvalidModel, name, s.ActiveProvider, strings.Join(settings.AllowedModels[s.ActiveProvider], ", "))
		}
		s.Model = name
		return nil
	})
	if err != nil {
		return state, err
	}

	uc.memory.ResetAll(ctx)

	uc.l.Info(ctx, "settings.SetModel: model changed", "model", state.Model, "user_id", sc.UserID)
	return state, nil
}
