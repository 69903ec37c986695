package gemini

import "errors"

var (
	ErrMissingAPIKey = errors.New("gemini: api key is required")
	ErrRateLimited   = errors.New("gemini: rate limited")
	ErrEmptyResponse = errors.New("gemini: empty response")
	ErrNoImage       = errors.New("gemini: response contained no image")
)
