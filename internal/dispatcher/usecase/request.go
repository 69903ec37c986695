package usecase

import (
	"encoding/json"
	"strings"

	"github.com/elliotchance/pie/v2"

	"discord-llm-bot/internal/agent"
	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
	"discord-llm-bot/pkg/llmprovider"
)

// toolDefinitions returns the tool schema for state, or nil when the model gets none.
func (uc *implUseCase) toolDefinitions(state settings.State) []llmprovider.Tool {
	if uc.registry == nil || !pie.Contains(uc.toolCapableModels, state.Model) {
		return nil
	}
	defs := uc.registry.ToFunctionDefinitions(func(tool agent.Tool) bool {
		return toolAllowed(state, tool.Name())
	})
	if len(defs) == 0 {
		return nil
	}
	return defs
}

func toolAllowed(state settings.State, name string) bool {
	return name != agent.ToolNameGenerateImage || state.ImageGeneration
}

// buildRequest maps the stored history onto a provider request.
// The system turn becomes the system instruction.
func buildRequest(state settings.State, history []model.Turn, tools []llmprovider.Tool) *llmprovider.Request {
	req := &llmprovider.Request{
		Model:       state.Model,
		Temperature: state.Temperature,
		MaxTokens:   state.MaxTokens,
		Tools:       tools,
		Messages:    make([]llmprovider.Message, 0, len(history)),
	}

	for _, turn := range history {
		switch turn.Role {
		case model.RoleSystem:
			if turn.Content != "" {
				req.SystemInstruction = &llmprovider.Message{
					Role:  llmprovider.RoleUser,
					Parts: []llmprovider.Part{{Text: turn.Content}},
				}
			}

		case model.RoleAssistant:
			msg := llmprovider.Message{Role: llmprovider.RoleAssistant}
			if turn.Content != "" {
				msg.Parts = append(msg.Parts, llmprovider.Part{Text: turn.Content})
			}
			for _, call := range turn.ToolCalls {
				msg.Parts = append(msg.Parts, llmprovider.Part{FunctionCall: &llmprovider.FunctionCall{
					ID:   call.ID,
					Name: call.Name,
					Args: decodeArguments(call.Arguments),
				}})
			}
			if len(msg.Parts) > 0 {
				req.Messages = append(req.Messages, msg)
			}

		case model.RoleTool:
			req.Messages = append(req.Messages, llmprovider.Message{
				Role: llmprovider.RoleTool,
				Parts: []llmprovider.Part{{FunctionResponse: &llmprovider.FunctionResponse{
					ID:       turn.ToolCallID,
					Name:     turn.Name,
					Response: decodeResult(turn.Content),
				}}},
			})

		default:
			msg := llmprovider.Message{Role: llmprovider.RoleUser}
			for _, uri := range turn.Videos {
				msg.Parts = append(msg.Parts, llmprovider.Part{FileData: &llmprovider.FileData{
					MIMEType: videoMIMEType,
					URI:      uri,
				}})
			}
			msg.Parts = append(msg.Parts, llmprovider.Part{Text: turn.Content})
			req.Messages = append(req.Messages, msg)
		}
	}

	return req
}

// decodeArguments parses stored call arguments. Anything but a JSON object becomes an empty map.
func decodeArguments(raw string) map[string]interface{} {
	args := map[string]interface{}{}
	if strings.TrimSpace(raw) == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]interface{}{}
	}
	return args
}

// decodeResult turns a stored JSON object back into a map and leaves other text as is.
func decodeResult(content string) interface{} {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(content), &obj); err == nil && obj != nil {
		return obj
	}
	return content
}

func encodeJSON(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
