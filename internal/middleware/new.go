package middleware

import (
	"time"

	"discord-llm-bot/pkg/log"
)

// DefaultMaxSkew is how far a signed webhook timestamp may drift from the server clock.
const DefaultMaxSkew = 5 * time.Minute

// Config holds the shared secrets checked on inbound requests.
type Config struct {
	// WebhookSecret signs discord events forwarded by the gateway relay.
	WebhookSecret string
	// APIToken is the bearer token of the operator command API.
	APIToken string
	MaxSkew  time.Duration
}

type Middleware struct {
	l             log.Logger
	webhookSecret string
	apiToken      string
	maxSkew       time.Duration
	now           func() time.Time
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.MaxSkew <= 0 {
		cfg.MaxSkew = DefaultMaxSkew
	}
	return Middleware{
		l:             l,
		webhookSecret: cfg.WebhookSecret,
		apiToken:      cfg.APIToken,
		maxSkew:       cfg.MaxSkew,
		now:           time.Now,
	}
}
