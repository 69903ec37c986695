package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"discord-llm-bot/pkg/gemini"
	"discord-llm-bot/pkg/groq"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = a.client.Model()
	}

	groqReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    convertToOpenAIMessages(req.SystemInstruction, req.Messages),
		Tools:       convertToOpenAITools(req.Tools),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, groqReq)
	if err != nil {
		if errors.Is(err, groq.ErrRateLimited) {
			err = fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, &ProviderError{Provider: ProviderGroq, Model: model, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: ProviderGroq, Model: model, Err: groq.ErrEmptyResponse}
	}

	return &Response{
		Content:      convertFromOpenAIMessage(resp.Choices[0].Message),
		ProviderName: ProviderGroq,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return ProviderGroq
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = a.client.Model()
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: convertToGeminiSystem(req.SystemInstruction),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       genai.Ptr[float32](float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := a.client.GenerateContent(ctx, model, convertToGeminiContents(req.Messages), cfg)
	if err != nil {
		if errors.Is(err, gemini.ErrRateLimited) {
			err = fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, &ProviderError{Provider: ProviderGemini, Model: model, Err: err}
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, &ProviderError{Provider: ProviderGemini, Model: model, Err: gemini.ErrEmptyResponse}
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Candidates[0].Content),
		ProviderName: ProviderGemini,
		ModelName:    model,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// --- OpenAI-compatible conversion (Groq) ---

func convertToOpenAIMessages(system *Message, msgs []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(msgs)+1)

	if system != nil {
		result = append(result, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: joinText(system.Parts),
		})
	}

	for _, msg := range msgs {
		switch msg.Role {
		case RoleTool:
			// One tool message per function response, linked by tool_call_id.
			for _, part := range msg.Parts {
				if part.FunctionResponse == nil {
					continue
				}
				result = append(result, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					Content:    responseToString(part.FunctionResponse.Response),
					Name:       part.FunctionResponse.Name,
					ToolCallID: part.FunctionResponse.ID,
				})
			}

		case RoleAssistant:
			out := openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: joinText(msg.Parts),
			}
			for _, part := range msg.Parts {
				if part.FunctionCall == nil {
					continue
				}
				args, _ := json.Marshal(part.FunctionCall.Args)
				out.ToolCalls = append(out.ToolCalls, openai.ToolCall{
					ID:   part.FunctionCall.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      part.FunctionCall.Name,
						Arguments: string(args),
					},
				})
			}
			result = append(result, out)

		default:
			result = append(result, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: joinText(msg.Parts),
			})
		}
	}

	return result
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}

	result := make([]openai.Tool, len(tools))
	for i, tool := range tools {
		result[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		}
	}
	return result
}

func convertFromOpenAIMessage(msg openai.ChatCompletionMessage) Message {
	out := Message{Role: RoleAssistant}
	if msg.Content != "" {
		out.Parts = append(out.Parts, Part{Text: msg.Content})
	}

	for _, tc := range msg.ToolCalls {
		// Unparsable arguments become an empty object; the tool reports what is missing.
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				args = map[string]interface{}{}
			}
		}
		out.Parts = append(out.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:   tc.ID,
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}

	return out
}

// --- Gemini conversion ---

func convertToGeminiSystem(system *Message) *genai.Content {
	if system == nil {
		return nil
	}
	return &genai.Content{Parts: []*genai.Part{{Text: joinText(system.Parts)}}}
}

func convertToGeminiContents(msgs []Message) []*genai.Content {
	result := make([]*genai.Content, 0, len(msgs))

	for _, msg := range msgs {
		role := string(genai.RoleUser)
		if msg.Role == RoleAssistant {
			role = string(genai.RoleModel)
		}

		content := &genai.Content{Role: role}
		for _, part := range msg.Parts {
			switch {
			case part.FunctionCall != nil:
				content.Parts = append(content.Parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{
						ID:   part.FunctionCall.ID,
						Name: part.FunctionCall.Name,
						Args: part.FunctionCall.Args,
					},
				})
			case part.FunctionResponse != nil:
				content.Parts = append(content.Parts, &genai.Part{
					FunctionResponse: &genai.FunctionResponse{
						ID:       part.FunctionResponse.ID,
						Name:     part.FunctionResponse.Name,
						Response: responseToMap(part.FunctionResponse.Response),
					},
				})
			case part.InlineData != nil:
				content.Parts = append(content.Parts, &genai.Part{
					InlineData: &genai.Blob{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data},
				})
			case part.FileData != nil:
				content.Parts = append(content.Parts, &genai.Part{
					FileData: &genai.FileData{FileURI: part.FileData.URI, MIMEType: part.FileData.MIMEType},
				})
			case part.Text != "":
				content.Parts = append(content.Parts, &genai.Part{Text: part.Text})
			}
		}

		if len(content.Parts) > 0 {
			result = append(result, content)
		}
	}

	return result
}

func convertToGeminiTools(tools []Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}

	decls := make([]*genai.FunctionDeclaration, len(tools))
	for i, tool := range tools {
		decls[i] = &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  mapToSchema(tool.Parameters),
		}
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// mapToSchema converts a JSON schema map into genai's typed schema.
// genai.Type constants are upper case ("OBJECT", "STRING").
func mapToSchema(m map[string]interface{}) *genai.Schema {
	if m == nil {
		return nil
	}

	schema := &genai.Schema{}
	if t, ok := m["type"].(string); ok {
		schema.Type = genai.Type(strings.ToUpper(t))
	}
	if desc, ok := m["description"].(string); ok {
		schema.Description = desc
	}
	if props, ok := m["properties"].(map[string]interface{}); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for k, v := range props {
			if propMap, ok := v.(map[string]interface{}); ok {
				schema.Properties[k] = mapToSchema(propMap)
			}
		}
	}
	if items, ok := m["items"].(map[string]interface{}); ok {
		schema.Items = mapToSchema(items)
	}
	schema.Required = toStringSlice(m["required"])
	schema.Enum = toStringSlice(m["enum"])

	return schema
}

func convertFromGeminiContent(content *genai.Content) Message {
	out := Message{Role: RoleAssistant}
	if content == nil {
		return out
	}

	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		switch {
		case part.FunctionCall != nil:
			out.Parts = append(out.Parts, Part{
				FunctionCall: &FunctionCall{
					ID:   part.FunctionCall.ID,
					Name: part.FunctionCall.Name,
					Args: part.FunctionCall.Args,
				},
			})
		case part.InlineData != nil:
			out.Parts = append(out.Parts, Part{
				InlineData: &Blob{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data},
			})
		case part.Text != "":
			out.Parts = append(out.Parts, Part{Text: part.Text})
		}
	}

	return out
}

// --- helpers ---

func joinText(parts []Part) string {
	var texts []string
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func responseToString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// responseToMap shapes a tool result into the object Gemini expects.
func responseToMap(v interface{}) map[string]any {
	switch r := v.(type) {
	case map[string]any:
		return r
	case map[string]string:
		out := make(map[string]any, len(r))
		for k, val := range r {
			out[k] = val
		}
		return out
	case nil:
		return map[string]any{}
	default:
		return map[string]any{"result": r}
	}
}

func toStringSlice(v interface{}) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
