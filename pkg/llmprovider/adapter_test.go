package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"discord-llm-bot/pkg/gemini"
	"discord-llm-bot/pkg/groq"
)

type fakeGroq struct {
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (f *fakeGroq) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeGroq) Model() string { return "groq-default" }

type fakeGemini struct {
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
	resp         *genai.GenerateContentResponse
	err          error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.lastModel, f.lastContents, f.lastConfig = model, contents, cfg
	return f.resp, f.err
}

func (f *fakeGemini) GenerateImage(ctx context.Context, model, prompt string) (*gemini.Image, error) {
	return nil, gemini.ErrNoImage
}

func (f *fakeGemini) Model() string { return "gemini-default" }

func toolConversation() *Request {
	return &Request{
		SystemInstruction: &Message{Role: RoleUser, Parts: []Part{{Text: "be brief"}}},
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "what time is it?"}}},
			{Role: RoleAssistant, Parts: []Part{{FunctionCall: &FunctionCall{
				ID: "call_1", Name: "get_current_time", Args: map[string]interface{}{"timezone": "UTC"},
			}}}},
			{Role: RoleTool, Parts: []Part{{FunctionResponse: &FunctionResponse{
				ID: "call_1", Name: "get_current_time", Response: "12:00",
			}}}},
		},
		Tools: []Tool{{
			Name:        "get_current_time",
			Description: "Current time",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"timezone": map[string]interface{}{"type": "string", "description": "IANA zone"},
				},
				"required": []string{"timezone"},
			},
		}},
		Temperature: 0.5,
		MaxTokens:   100,
	}
}

func TestGroqAdapter_ConvertsConversation(t *testing.T) {
	client := &fakeGroq{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: "It is noon.",
		}}},
		Usage: openai.Usage{PromptTokens: 3, CompletionTokens: 4, TotalTokens: 7},
	}}
	adapter := NewGroqAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), toolConversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := client.lastReq.Messages
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "be brief" {
		t.Errorf("system message not first: %+v", msgs[0])
	}
	if len(msgs[2].ToolCalls) != 1 || msgs[2].ToolCalls[0].Function.Arguments != `{"timezone":"UTC"}` {
		t.Errorf("unexpected tool call: %+v", msgs[2].ToolCalls)
	}
	if msgs[3].Role != openai.ChatMessageRoleTool || msgs[3].ToolCallID != "call_1" || msgs[3].Content != "12:00" {
		t.Errorf("unexpected tool message: %+v", msgs[3])
	}
	if client.lastReq.Model != "groq-default" {
		t.Errorf("expected default model, got %s", client.lastReq.Model)
	}
	if len(client.lastReq.Tools) != 1 || client.lastReq.Tools[0].Function.Name != "get_current_time" {
		t.Errorf("tools not forwarded: %+v", client.lastReq.Tools)
	}
	if resp.Text() != "It is noon." || resp.Usage.TotalTokens != 7 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGroqAdapter_ParsesToolCalls(t *testing.T) {
	client := &fakeGroq{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{
			ToolCalls: []openai.ToolCall{
				{ID: "a", Function: openai.FunctionCall{Name: "web_search", Arguments: `{"query":"go"}`}},
				{ID: "b", Function: openai.FunctionCall{Name: "get_current_time", Arguments: `not json`}},
			},
		}}},
	}}

	resp, err := NewGroqAdapter(client).GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := resp.FunctionCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].Name != "web_search" || calls[0].Args["query"] != "go" {
		t.Errorf("unexpected first call: %+v", calls[0])
	}
	if calls[1].ID != "b" || len(calls[1].Args) != 0 {
		t.Errorf("expected empty args for invalid JSON, got %+v", calls[1])
	}
}

func TestGroqAdapter_RateLimit(t *testing.T) {
	client := &fakeGroq{err: fmt.Errorf("%w: slow down", groq.ErrRateLimited)}

	_, err := NewGroqAdapter(client).GenerateContent(context.Background(), &Request{Model: "m"})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Model != "m" || perr.Provider != ProviderGroq {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if !IsRateLimited(err) {
		t.Errorf("expected rate limit to be recognized, got %v", err)
	}
}

func TestGeminiAdapter_ConvertsConversation(t *testing.T) {
	client := &fakeGemini{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{
			Role: string(genai.RoleModel),
			Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: "It is noon."},
			},
		}}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 2, CandidatesTokenCount: 3, TotalTokenCount: 5},
	}}

	resp, err := NewGeminiAdapter(client).GenerateContent(context.Background(), toolConversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastModel != "gemini-default" {
		t.Errorf("expected default model, got %s", client.lastModel)
	}
	if len(client.lastContents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(client.lastContents))
	}
	if client.lastContents[1].Role != string(genai.RoleModel) || client.lastContents[1].Parts[0].FunctionCall == nil {
		t.Errorf("assistant tool call not mapped: %+v", client.lastContents[1])
	}
	fr := client.lastContents[2].Parts[0].FunctionResponse
	if fr == nil || fr.Response["result"] != "12:00" {
		t.Errorf("tool response not wrapped: %+v", fr)
	}
	if client.lastConfig.SystemInstruction == nil || client.lastConfig.MaxOutputTokens != 100 {
		t.Errorf("unexpected config: %+v", client.lastConfig)
	}
	params := client.lastConfig.Tools[0].FunctionDeclarations[0].Parameters
	if params.Type != genai.TypeObject || params.Properties["timezone"].Type != genai.TypeString {
		t.Errorf("schema not converted: %+v", params)
	}
	if len(params.Required) != 1 || params.Required[0] != "timezone" {
		t.Errorf("required not converted: %v", params.Required)
	}
	if resp.Text() != "It is noon." || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGeminiAdapter_RateLimit(t *testing.T) {
	client := &fakeGemini{err: gemini.ErrRateLimited}

	_, err := NewGeminiAdapter(client).GenerateContent(context.Background(), &Request{})

	if !IsRateLimited(err) {
		t.Errorf("expected rate limit, got %v", err)
	}
}

func TestGeminiAdapter_FileData(t *testing.T) {
	client := &fakeGemini{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "ok"}}}}},
	}}

	_, err := NewGeminiAdapter(client).GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: RoleUser, Parts: []Part{
			{FileData: &FileData{MIMEType: "video/mp4", URI: "https://youtu.be/abc"}},
			{Text: "Summarize the video."},
		}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := client.lastContents[0].Parts
	if len(parts) != 2 || parts[0].FileData == nil {
		t.Fatalf("file data not mapped: %+v", parts)
	}
	if parts[0].FileData.FileURI != "https://youtu.be/abc" || parts[0].FileData.MIMEType != "video/mp4" {
		t.Errorf("unexpected file data: %+v", parts[0].FileData)
	}
	if parts[1].Text != "Summarize the video." {
		t.Errorf("text part lost: %+v", parts[1])
	}
}

func TestAdapters_EmptyResponse(t *testing.T) {
	_, err := NewGroqAdapter(&fakeGroq{}).GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, groq.ErrEmptyResponse) {
		t.Errorf("expected groq empty response, got %v", err)
	}

	_, err = NewGeminiAdapter(&fakeGemini{resp: &genai.GenerateContentResponse{}}).GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, gemini.ErrEmptyResponse) {
		t.Errorf("expected gemini empty response, got %v", err)
	}
}
