package settings

import (
	"context"

	"discord-llm-bot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Privileged commands; each authorizes sc before touching the state.
	Toggle(ctx context.Context, sc model.Scope) (State, error)
	SelectProvider(ctx context.Context, sc model.Scope, provider string) (State, error)
	SetModel(ctx context.Context, sc model.Scope, name string) (State, error)
	SetTemperature(ctx context.Context, sc model.Scope, value float64) (State, error)
	SetMaxTokens(ctx context.Context, sc model.Scope, value int) (State, error)
	SetMemoryLimit(ctx context.Context, sc model.Scope, value int) (State, error)
	SetSystemPrompt(ctx context.Context, sc model.Scope, prompt string) (State, error)
	ToggleImageGeneration(ctx context.Context, sc model.Scope) (State, error)
	Current(ctx context.Context, sc model.Scope) (CurrentOutput, error)

	// ResetMemory clears the caller's own history. No authorization.
	ResetMemory(ctx context.Context, sc model.Scope)
}

// Memory is the part of conversation memory that settings changes act on.
type Memory interface {
	Reset(ctx context.Context, userID string)
	ResetAll(ctx context.Context)
	Users() int
}
