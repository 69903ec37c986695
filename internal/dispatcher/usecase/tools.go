package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/panics"

	"discord-llm-bot/internal/agent"
	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
	"discord-llm-bot/pkg/llmprovider"
)

// toolRun is what executing one batch of tool calls produced.
type toolRun struct {
	turns       []model.Turn
	inline      []string
	attachments []agent.Attachment
}

// runTools executes calls in the order given. Each call yields an assistant turn
// followed by its result turn. A failing call records {"error": msg},
// adds an inline chunk and does not stop the remaining calls.
func (uc *implUseCase) runTools(ctx context.Context, sc model.Scope, state settings.State, text string, calls []llmprovider.FunctionCall) toolRun {
	var run toolRun

	for i, call := range calls {
		id := call.ID
		if id == "" {
			id = "call_" + uuid.NewString()
		}

		assistant := model.Turn{
			Role: model.RoleAssistant,
			ToolCalls: []model.ToolCall{{
				ID:        id,
				Name:      call.Name,
				Arguments: encodeJSON(call.Args),
			}},
		}
		if i == 0 {
			assistant.Content = text
		}
		run.turns = append(run.turns, assistant)

		result, err := uc.execute(ctx, state, call)
		var content string
		if err != nil {
			uc.l.Warn(ctx, LogPrefixRunTools+": tool failed",
				"user_id", sc.UserID,
				"tool", call.Name,
				"error", err.Error(),
			)
			run.inline = append(run.inline, fmt.Sprintf(MsgToolFailed, call.Name, err.Error()))
			content = encodeJSON(map[string]string{"error": err.Error()})
		} else {
			if files, ok := result.(agent.AttachmentResult); ok {
				run.attachments = append(run.attachments, files.Attachments()...)
				result = files.Summary()
			}
			uc.l.Info(ctx, LogPrefixRunTools+": tool executed", "user_id", sc.UserID, "tool", call.Name)
			content = encodeJSON(result)
		}

		run.turns = append(run.turns, model.Turn{
			Role:       model.RoleTool,
			Content:    content,
			ToolCallID: id,
			Name:       call.Name,
		})
	}

	return run
}

// execute looks the tool up and runs it. A panicking tool is reported as a failure.
func (uc *implUseCase) execute(ctx context.Context, state settings.State, call llmprovider.FunctionCall) (interface{}, error) {
	if uc.registry == nil || !toolAllowed(state, call.Name) {
		return nil, fmt.Errorf("%w: %s", agent.ErrToolNotFound, call.Name)
	}
	tool, ok := uc.registry.Get(call.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", agent.ErrToolNotFound, call.Name)
	}

	args := call.Args
	if args == nil {
		args = map[string]interface{}{}
	}

	var (
		result interface{}
		err    error
		pc     panics.Catcher
	)
	pc.Try(func() {
		result, err = tool.Execute(ctx, args)
	})
	if r := pc.Recovered(); r != nil {
		return nil, fmt.Errorf("%w: %v", agent.ErrToolExecutionFailed, r.Value)
	}
	return result, err
}
