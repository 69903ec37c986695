package usecase

import (
	"context"

	"discord-llm-bot/internal/agent"
	"discord-llm-bot/internal/dispatcher"
	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
	"discord-llm-bot/pkg/llmprovider"
	"discord-llm-bot/pkg/log"
)

// Completer runs a generation request through the provider's model chain.
type Completer interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Memory is the conversation store the dispatcher reads and appends to.
type Memory interface {
	GetOrCreate(ctx context.Context, userID string) []model.Turn
	Append(ctx context.Context, userID string, turns ...model.Turn)
}

// StateReader exposes the current inference settings.
type StateReader interface {
	Snapshot() settings.State
}

// Config wires one dispatcher to one provider backend.
type Config struct {
	Provider  string
	Completer Completer
	Settings  StateReader
	Memory    Memory
	Registry  *agent.ToolRegistry // nil disables tools

	// ToolCapableModels are the models that get the tool schema. Empty means none.
	ToolCapableModels []string
	// VideoCapableModels accept YouTube links as video input. Empty leaves links as plain text.
	VideoCapableModels []string
	ChunkSize          int
}

// implUseCase is the private implementation of dispatcher.UseCase.
type implUseCase struct {
	provider           string
	completer          Completer
	settings           StateReader
	memory             Memory
	registry           *agent.ToolRegistry
	toolCapableModels  []string
	videoCapableModels []string
	chunkSize          int
	locks              *userLocks
	l                  log.Logger
}

// New creates a dispatcher for cfg.Provider. It refuses to start without a completer.
func New(cfg Config, l log.Logger) (dispatcher.UseCase, error) {
	if cfg.Completer == nil || cfg.Provider == "" {
		return nil, dispatcher.ErrConfigMissing
	}
	return &implUseCase{
		provider:           cfg.Provider,
		completer:          cfg.Completer,
		settings:           cfg.Settings,
		memory:             cfg.Memory,
		registry:           cfg.Registry,
		toolCapableModels:  cfg.ToolCapableModels,
		videoCapableModels: cfg.VideoCapableModels,
		chunkSize:          cfg.ChunkSize,
		locks:              newUserLocks(),
		l:                  l,
	}, nil
}

func (uc *implUseCase) Provider() string {
	return uc.provider
}
