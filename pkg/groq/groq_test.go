package groq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"discord-llm-bot/pkg/groq"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := groq.New(groq.Config{}); !errors.Is(err, groq.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestCreateChatCompletion(t *testing.T) {
	var gotModel, gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		gotModel, _ = req["model"].(string)

		if gotModel == "limited-model" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"tokens","code":"rate_limit_exceeded"}}`))
			return
		}
		if gotModel == "empty-model" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"x","object":"chat.completion","model":"empty-model","choices":[]}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "` + gotModel + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hello!"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 2, "total_tokens": 7}
		}`))
	}))
	defer ts.Close()

	client, err := groq.New(groq.Config{APIKey: "test-key", Model: "llama-3.3-70b-versatile", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("fills default model", func(t *testing.T) {
		resp, err := client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
			Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotModel != "llama-3.3-70b-versatile" {
			t.Errorf("expected default model, got %q", gotModel)
		}
		if gotAuth != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", gotAuth)
		}
		if resp.Choices[0].Message.Content != "Hello!" {
			t.Errorf("unexpected content %q", resp.Choices[0].Message.Content)
		}
		if resp.Usage.TotalTokens != 7 {
			t.Errorf("expected 7 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("maps 429 to ErrRateLimited", func(t *testing.T) {
		_, err := client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
			Model:    "limited-model",
			Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "hi"}},
		})
		if !errors.Is(err, groq.ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		_, err := client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
			Model:    "empty-model",
			Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "hi"}},
		})
		if !errors.Is(err, groq.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})
}
