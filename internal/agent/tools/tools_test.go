package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"discord-llm-bot/internal/agent"
	"discord-llm-bot/internal/agent/tools"
	"discord-llm-bot/pkg/gemini"
	"discord-llm-bot/pkg/tavily"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockTavily
type mockTavily struct {
	lastReq tavily.SearchRequest
	resp    tavily.SearchResponse
	err     error
}

func (m *mockTavily) Search(ctx context.Context, req tavily.SearchRequest) (tavily.SearchResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

// mockImageGenerator
type mockImageGenerator struct {
	lastModel string
	img       *gemini.Image
	err       error
}

func (m *mockImageGenerator) GenerateImage(ctx context.Context, model, prompt string) (*gemini.Image, error) {
	m.lastModel = model
	return m.img, m.err
}

func TestAgentTools(t *testing.T) {
	ctx := context.Background()
	l := &mockLogger{}

	t.Run("GetCurrentTimeTool", func(t *testing.T) {
		tool := tools.NewGetCurrentTimeTool("", l)

		if tool.Name() != "get_current_time" {
			t.Errorf("unexpected name: %s", tool.Name())
		}
		if tool.Description() == "" || len(tool.Parameters()) == 0 {
			t.Errorf("missing desc or params")
		}

		res, err := tool.Execute(ctx, map[string]interface{}{"timezone": "Asia/Tokyo"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		out, ok := res.(tools.GetCurrentTimeOutput)
		if !ok || out.Timezone != "Asia/Tokyo" || !strings.HasSuffix(out.Datetime, "+09:00") || out.Weekday == "" {
			t.Errorf("unexpected result: %+v", res)
		}

		res, err = tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out := res.(tools.GetCurrentTimeOutput); out.Timezone != "UTC" || !strings.HasSuffix(out.Datetime, "Z") {
			t.Errorf("expected UTC default, got %+v", out)
		}
	})

	t.Run("GetCurrentTimeTool invalid timezone", func(t *testing.T) {
		tool := tools.NewGetCurrentTimeTool("UTC", l)

		for _, tz := range []string{"Mars/Olympus_Mons", "Local"} {
			_, err := tool.Execute(ctx, map[string]interface{}{"timezone": tz})
			if err == nil || err.Error() != `unknown timezone "`+tz+`"` {
				t.Errorf("expected unknown timezone error for %s, got %v", tz, err)
			}
		}

		if _, err := tool.Execute(ctx, map[string]interface{}{"timezone": 42}); err == nil {
			t.Errorf("expected parse error for non-string timezone")
		}
	})

	t.Run("WebSearchTool", func(t *testing.T) {
		client := &mockTavily{resp: tavily.SearchResponse{
			Answer:  "42",
			Results: []tavily.Result{{Title: "Answer", URL: "https://example.com", Content: "forty two", Score: 0.9}},
		}}
		tool := tools.NewWebSearchTool(client, l)

		if tool.Name() != "web_search" {
			t.Errorf("unexpected name: %s", tool.Name())
		}

		res, err := tool.Execute(ctx, map[string]interface{}{"query": " meaning of life ", "max_results": float64(3)})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		out, ok := res.(tools.WebSearchOutput)
		if !ok || out.Answer != "42" || len(out.Results) != 1 || out.Results[0].URL != "https://example.com" {
			t.Errorf("unexpected result: %+v", res)
		}
		if client.lastReq.Query != "meaning of life" || client.lastReq.MaxResults != 3 || !client.lastReq.IncludeAnswer {
			t.Errorf("unexpected request: %+v", client.lastReq)
		}

		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Errorf("expected error missing query")
		}

		client.err = errors.New("boom")
		if _, err := tool.Execute(ctx, map[string]interface{}{"query": "x"}); err == nil {
			t.Errorf("expected search error")
		}
	})

	t.Run("GenerateImageTool", func(t *testing.T) {
		gen := &mockImageGenerator{img: &gemini.Image{Text: "a cat", MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}}
		tool := tools.NewGenerateImageTool(gen, "", l)

		if tool.Name() != "generate_image" {
			t.Errorf("unexpected name: %s", tool.Name())
		}

		res, err := tool.Execute(ctx, map[string]interface{}{"prompt": "draw a cat"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if gen.lastModel != gemini.DefaultImageModel {
			t.Errorf("expected default image model, got %s", gen.lastModel)
		}

		withFiles, ok := res.(agent.AttachmentResult)
		if !ok {
			t.Fatalf("expected attachment result, got %T", res)
		}
		files := withFiles.Attachments()
		if len(files) != 1 || !strings.HasSuffix(files[0].Name, ".png") || len(files[0].Data) != 4 {
			t.Errorf("unexpected attachments: %+v", files)
		}
		summary, ok := withFiles.Summary().(map[string]interface{})
		if !ok || summary["text"] != "a cat" || summary["attachment"] != files[0].Name {
			t.Errorf("unexpected summary: %+v", withFiles.Summary())
		}

		gen.err = gemini.ErrNoImage
		if _, err := tool.Execute(ctx, map[string]interface{}{"prompt": "draw"}); !errors.Is(err, gemini.ErrNoImage) {
			t.Errorf("expected ErrNoImage, got %v", err)
		}
		if _, err := tool.Execute(ctx, map[string]interface{}{"prompt": "  "}); err == nil {
			t.Errorf("expected error for blank prompt")
		}
	})
}
