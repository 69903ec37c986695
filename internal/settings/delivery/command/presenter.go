package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
)

func presentCurrent(out settings.CurrentOutput) string {
	s := out.State
	var b strings.Builder
	b.WriteString("**Current LLM Settings**\n")
	fmt.Fprintf(&b, "Provider: %s\n", s.ActiveProvider)
	fmt.Fprintf(&b, "Model: %s\n", s.Model)
	fmt.Fprintf(&b, "Context Messages: %d\n", s.MemoryLimit)
	fmt.Fprintf(&b, "Max Tokens: %d\n", s.MaxTokens)
	fmt.Fprintf(&b, "Temperature: %s\n", formatFloat(s.Temperature))
	fmt.Fprintf(&b, "Inference: %s\n", enabledText(s.InferenceEnabled))
	fmt.Fprintf(&b, "Image Generation: %s\n", enabledText(s.ImageGeneration))
	fmt.Fprintf(&b, "Users With Memory: %d", out.UsersWithMemory)
	return b.String()
}

// mapError turns a command failure into the text shown to the caller.
func (r Runner) mapError(ctx context.Context, sc model.Scope, cmd Command, err error) string {
	switch {
	case errors.Is(err, settings.ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, settings.ErrInvalidProvider):
		return "Invalid provider. Available providers: " + strings.Join(settings.Providers, ", ")
	case errors.Is(err, settings.ErrInvalidModel):
		return "Invalid model: " + strings.TrimPrefix(err.Error(), settings.ErrInvalidModel.Error()+": ")
	case errors.Is(err, settings.ErrInvalidValue):
		return "Invalid value: " + strings.TrimPrefix(err.Error(), settings.ErrInvalidValue.Error()+": ")
	case errors.Is(err, ErrUsage):
		return "Usage: " + usage[cmd.Name]
	case errors.Is(err, ErrInvalidSyntax):
		return "Could not parse that command: " + strings.TrimPrefix(err.Error(), ErrInvalidSyntax.Error()+": ")
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command. Available commands: " + strings.Join(Names, ", ")
	}

	r.l.Error(ctx, "command.Run: unexpected error", "command", cmd.Name, "user_id", sc.UserID, "error", err.Error())
	return MsgInternalError
}

func enabledText(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
