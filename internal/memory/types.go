package memory

import (
	"time"

	"discord-llm-bot/internal/settings"
)

// Config bounds how many histories are kept and for how long.
type Config struct {
	TTL      time.Duration // idle time before a history is evicted, 0 keeps it for the process lifetime
	MaxUsers int           // 0 means unbounded
}

// StateReader exposes the settings the store reads at call time.
type StateReader interface {
	Snapshot() settings.State
}
