package gemini

import "time"

const (
	// DefaultModel is the default Gemini chat model
	DefaultModel = "gemini-2.5-pro"

	// DefaultImageModel can return inline image parts
	DefaultImageModel = "gemini-2.0-flash-exp-image-generation"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 120 * time.Second
)
