package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
)

// Run executes cmd for sc. The reply is always user-presentable, errors included.
// err is returned as well so transports can choose a status.
func (r Runner) Run(ctx context.Context, sc model.Scope, cmd Command) (string, error) {
	reply, err := r.run(ctx, sc, cmd)
	if err != nil {
		return r.mapError(ctx, sc, cmd, err), err
	}
	return reply, nil
}

func (r Runner) run(ctx context.Context, sc model.Scope, cmd Command) (string, error) {
	switch cmd.Name {
	case NameToggleLLM:
		state, err := r.uc.Toggle(ctx, sc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("LLM is now %s.", enabledText(state.InferenceEnabled)), nil

	case NameSelectProvider:
		arg, err := oneArg(cmd)
		if err != nil {
			return "", err
		}
		state, err := r.uc.SelectProvider(ctx, sc, arg)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("LLM provider changed to: %s (model `%s`)", state.ActiveProvider, state.Model), nil

	case NameSetModel:
		arg, err := oneArg(cmd)
		if err != nil {
			return "", err
		}
		state, err := r.uc.SetModel(ctx, sc, arg)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Model set to `%s`.", state.Model), nil

	case NameSetTemp:
		arg, err := oneArg(cmd)
		if err != nil {
			return "", err
		}
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a number", settings.ErrInvalidValue, arg)
		}
		state, err := r.uc.SetTemperature(ctx, sc, value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("temp updated to: %s", formatFloat(state.Temperature)), nil

	case NameSetMaxTokens:
		value, err := intArg(cmd)
		if err != nil {
			return "", err
		}
		state, err := r.uc.SetMaxTokens(ctx, sc, value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("max tokens updated to: %d", state.MaxTokens), nil

	case NameSetMemory:
		value, err := intArg(cmd)
		if err != nil {
			return "", err
		}
		state, err := r.uc.SetMemoryLimit(ctx, sc, value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("memory updated to: %d", state.MemoryLimit), nil

	case NameSetSystemPrompt:
		if len(cmd.Args) == 0 {
			return "", ErrUsage
		}
		state, err := r.uc.SetSystemPrompt(ctx, sc, strings.Join(cmd.Args, " "))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("System prompt updated to: %s", state.SystemPrompt), nil

	case NameToggleImageGen:
		state, err := r.uc.ToggleImageGeneration(ctx, sc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Image generation is now %s.", enabledText(state.ImageGeneration)), nil

	case NameCurrentSettings:
		out, err := r.uc.Current(ctx, sc)
		if err != nil {
			return "", err
		}
		return presentCurrent(out), nil

	case NameResetMemory:
		r.uc.ResetMemory(ctx, sc)
		return MsgMemoryCleared, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name)
}

func oneArg(cmd Command) (string, error) {
	if len(cmd.Args) != 1 {
		return "", ErrUsage
	}
	return cmd.Args[0], nil
}

func intArg(cmd Command) (int, error) {
	arg, err := oneArg(cmd)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", settings.ErrInvalidValue, arg)
	}
	return value, nil
}

// Handle parses text as a prefixed command and runs it. handled is false for ordinary chat.
func (r Runner) Handle(ctx context.Context, sc model.Scope, text, prefix string) (reply string, handled bool, err error) {
	cmd, ok, err := Parse(text, prefix)
	if !ok {
		return "", false, nil
	}
	if err != nil {
		return r.mapError(ctx, sc, cmd, err), true, err
	}
	reply, err = r.Run(ctx, sc, cmd)
	return reply, true, err
}
