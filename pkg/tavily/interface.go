package tavily

import "context"

// ITavily defines the interface for Tavily web search.
// Implementations are safe for concurrent use.
type ITavily interface {
	Search(ctx context.Context, req SearchRequest) (SearchResponse, error)
}
