package tools

import (
	"context"
	"fmt"
	"strings"

	"discord-llm-bot/internal/agent"
	pkgLog "discord-llm-bot/pkg/log"
	"discord-llm-bot/pkg/tavily"
)

// WebSearchTool answers questions about recent events through Tavily.
type WebSearchTool struct {
	client tavily.ITavily
	l      pkgLog.Logger
}

func NewWebSearchTool(client tavily.ITavily, l pkgLog.Logger) *WebSearchTool {
	return &WebSearchTool{client: client, l: l}
}

func (t *WebSearchTool) Name() string {
	return "web_search"
}

func (t *WebSearchTool) Description() string {
	return "Search the web for up-to-date information. Returns a short answer and the most relevant pages."
}

func (t *WebSearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query",
			},
			"max_results": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results (default 5, max 10)",
			},
		},
		"required": []string{"query"},
	}
}

type WebSearchInput struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type WebSearchOutput struct {
	Query   string            `json:"query"`
	Answer  string            `json:"answer,omitempty"`
	Results []WebSearchResult `json:"results"`
}

type WebSearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

func (t *WebSearchTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params WebSearchInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	params.Query = strings.TrimSpace(params.Query)
	if params.Query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	t.l.Infof(ctx, "web_search: %q (max %d)", params.Query, params.MaxResults)

	resp, err := t.client.Search(ctx, tavily.SearchRequest{
		Query:         params.Query,
		MaxResults:    params.MaxResults,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]WebSearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, WebSearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
		})
	}

	return WebSearchOutput{
		Query:   params.Query,
		Answer:  resp.Answer,
		Results: results,
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*WebSearchTool)(nil)
