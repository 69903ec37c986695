package usecase

import (
	"context"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
)

func (uc *implUseCase) Current(ctx context.Context, sc model.Scope) (settings.CurrentOutput, error) {
	if err := uc.authorize(ctx, sc, "llm_current_settings"); err != nil {
		return settings.CurrentOutput{}, err
	}
	return settings.CurrentOutput{
		State:           uc.store.Snapshot(),
		UsersWithMemory: uc.memory.Users(),
	}, nil
}

func (uc *implUseCase) ResetMemory(ctx context.Context, sc model.Scope) {
	uc.memory.Reset(ctx, sc.UserID)
	uc.l.Info(ctx, "settings.ResetMemory: history cleared", "user_id", sc.UserID)
}
