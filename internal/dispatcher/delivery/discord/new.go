package discord

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"discord-llm-bot/internal/dispatcher"
	"discord-llm-bot/internal/settings/delivery/command"
	pkgDiscord "discord-llm-bot/pkg/discord"
	pkgLog "discord-llm-bot/pkg/log"
)

// Handler receives relayed gateway events.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every accepted event has been processed.
	Wait()
}

// Config wires the handler.
type Config struct {
	BotUserID       string
	CommandPrefix   string
	RateLimitPerMin int           // 0 disables the inbound limit
	ProcessTimeout  time.Duration // per event, covers every provider call
}

type handler struct {
	l           pkgLog.Logger
	bot         pkgDiscord.IBot
	dispatchers []dispatcher.UseCase
	commands    command.Runner
	limiter     *rateLimiter
	cfg         Config
	inflight    sync.WaitGroup
}

// New creates the Discord delivery handler. Every dispatcher sees every message.
func New(l pkgLog.Logger, bot pkgDiscord.IBot, dispatchers []dispatcher.UseCase, commands command.Runner, cfg Config) Handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = DefaultProcessTimeout
	}
	return &handler{
		l:           l,
		bot:         bot,
		dispatchers: dispatchers,
		commands:    commands,
		limiter:     newRateLimiter(cfg.RateLimitPerMin),
		cfg:         cfg,
	}
}
