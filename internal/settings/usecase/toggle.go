package usecase

import (
	"context"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
)

// Toggle flips inference on or off.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "toggle_llm"); err != nil {
		return settings.State{}, err
	}

	state, _ := uc.store.Update(func(s *settings.State) error {
		s.InferenceEnabled = !s.InferenceEnabled
		return nil
	})

	uc.l.Info(ctx, "settings.Toggle: inference toggled", "enabled", state.InferenceEnabled, "user_id", sc.UserID)
	return state, nil
}

// ToggleImageGeneration flips the image generation tool on or off.
func (uc *implUseCase) ToggleImageGeneration(ctx context.Context, sc model.Scope) (settings.State, error) {
	if err := uc.authorize(ctx, sc, "toggle_image_gen"); err != nil {
		return settings.State{}, err
	}

	state, _ := uc.store.Update(func(s *settings.State) error {
		s.ImageGeneration = !s.ImageGeneration
		return nil
	})

	uc.l.Info(ctx, "settings.ToggleImageGeneration: image generation toggled", "enabled", state.ImageGeneration, "user_id", sc.UserID)
	return state, nil
}
