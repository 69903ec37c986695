package gemini

import "time"

// Config holds configuration for the Gemini client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Validate checks required fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Image is a generated picture plus any text the model returned alongside it.
type Image struct {
	Text     string
	MIMEType string
	Data     []byte
}
