package groq

import "errors"

var (
	ErrMissingAPIKey = errors.New("groq: api key is required")
	ErrRateLimited   = errors.New("groq: rate limited")
	ErrEmptyResponse = errors.New("groq: empty response")
)
