package usecase

import (
	"context"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
	"discord-llm-bot/pkg/log"
)

// implUseCase is the private implementation of settings.UseCase.
type implUseCase struct {
	store  *settings.Store
	auth   *settings.Authorizer
	memory settings.Memory
	l      log.Logger
}

// New creates a new settings UseCase implementation.
func New(store *settings.Store, auth *settings.Authorizer, memory settings.Memory, l log.Logger) settings.UseCase {
	return &implUseCase{
		store:  store,
		auth:   auth,
		memory: memory,
		l:      l,
	}
}

// authorize rejects callers outside the allow-lists. The attempt is logged as a warning.
func (uc *implUseCase) authorize(ctx context.Context, sc model.Scope, command string) error {
	if uc.auth.IsAuthorized(sc) {
		return nil
	}
	uc.l.Warn(ctx, "settings.authorize: unauthorized command",
		"command", command,
		"user_id", sc.UserID,
		"username", sc.Username,
	)
	return settings.ErrUnauthorized
}
