package dispatcher

import (
	"context"

	"discord-llm-bot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Provider is the backend this dispatcher answers for.
	Provider() string

	// HandleInbound turns one user message into reply chunks.
	// It is a no-op when inference is off or another provider is active.
	HandleInbound(ctx context.Context, sc model.Scope, raw string) (Output, error)
}
