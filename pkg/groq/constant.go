package groq

import "time"

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
	DefaultTimeout = 60 * time.Second
)
