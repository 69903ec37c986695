package usecase

import (
	"context"
	"strings"

	"discord-llm-bot/internal/dispatcher"
	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
	"discord-llm-bot/pkg/chunk"
)

// HandleInbound runs one exchange for sc.UserID.
// Provider failures become a single failure notice chunk. The user turn stays in memory.
// The only returned error is ctx ending while waiting behind the user's previous message.
func (uc *implUseCase) HandleInbound(ctx context.Context, sc model.Scope, raw string) (dispatcher.Output, error) {
	if !uc.active(uc.settings.Snapshot()) {
		return dispatcher.Output{}, nil
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return dispatcher.Output{}, nil
	}

	release, err := uc.locks.acquire(ctx, sc.UserID)
	if err != nil {
		return dispatcher.Output{}, err
	}
	defer release()

	// Settings may have changed while queued
	state := uc.settings.Snapshot()
	if !uc.active(state) {
		return dispatcher.Output{}, nil
	}

	send, store, denial := uc.userTurns(state, text)
	if denial != "" {
		uc.l.Info(ctx, LogPrefixHandleInbound+": video input refused", "user_id", sc.UserID, "model", state.Model)
		return dispatcher.Output{Chunks: []string{denial}}, nil
	}

	uc.memory.Append(ctx, sc.UserID, store)
	history := uc.memory.GetOrCreate(ctx, sc.UserID)
	// The stored user turn is the tail. Send the form that carries the videos.
	history[len(history)-1] = send
	tools := uc.toolDefinitions(state)

	resp, err := uc.completer.GenerateContent(ctx, buildRequest(state, history, tools))
	if err != nil {
		return uc.fail(ctx, sc, err), nil
	}

	reply := strings.TrimSpace(resp.Text())
	var run toolRun

	if calls := resp.FunctionCalls(); len(calls) > 0 {
		run = uc.runTools(ctx, sc, state, reply, calls)
		uc.memory.Append(ctx, sc.UserID, run.turns...)

		// Built from the in-flight exchange. Stored memory may already have trimmed the user turn.
		exchange := append(history, run.turns...)
		followUp, err := uc.completer.GenerateContent(ctx, buildRequest(state, exchange, tools))
		if err != nil {
			return uc.fail(ctx, sc, err), nil
		}
		// Tool requests in the follow-up are not executed
		reply = strings.TrimSpace(followUp.Text())
	}

	if reply == "" {
		reply = MsgEmptyResponse
	}
	uc.memory.Append(ctx, sc.UserID, model.AssistantTurn(reply))

	out := dispatcher.Output{
		Chunks:      append(run.inline, chunk.Split(reply, uc.chunkSize)...),
		Attachments: run.attachments,
	}

	uc.l.Info(ctx, LogPrefixHandleInbound+": replied",
		"provider", uc.provider,
		"model", resp.ModelName,
		"user_id", sc.UserID,
		"username", sc.Username,
		"chunks", len(out.Chunks),
		"attachments", len(out.Attachments),
	)
	return out, nil
}

func (uc *implUseCase) active(state settings.State) bool {
	return state.InferenceEnabled && state.ActiveProvider == uc.provider
}

func (uc *implUseCase) fail(ctx context.Context, sc model.Scope, err error) dispatcher.Output {
	uc.l.Error(ctx, LogPrefixHandleInbound+": completion failed",
		"provider", uc.provider,
		"user_id", sc.UserID,
		"error", err.Error(),
	)
	return dispatcher.Output{Chunks: []string{MsgFailureNotice}}
}
