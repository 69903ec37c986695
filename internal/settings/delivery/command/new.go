package command

import (
	"discord-llm-bot/internal/settings"
	pkgLog "discord-llm-bot/pkg/log"
)

// Runner executes commands against the settings use case and renders the reply.
type Runner struct {
	uc settings.UseCase
	l  pkgLog.Logger
}

func NewRunner(uc settings.UseCase, l pkgLog.Logger) Runner {
	return Runner{uc: uc, l: l}
}
