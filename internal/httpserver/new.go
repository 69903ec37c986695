package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	discordDelivery "discord-llm-bot/internal/dispatcher/delivery/discord"
	"discord-llm-bot/internal/middleware"
	settingsHTTP "discord-llm-bot/internal/settings/delivery/http"
	"discord-llm-bot/pkg/log"
)

const defaultShutdownTimeout = 30 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware
	webhookSecret   string
	apiToken        string

	// Chat delivery
	discordHandler discordDelivery.Handler

	// Operator command API
	commandHandler settingsHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// WebhookSecret is required with DiscordHandler, APIToken with CommandHandler.
	WebhookSecret string
	APIToken      string

	DiscordHandler discordDelivery.Handler
	CommandHandler settingsHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		webhookSecret:   cfg.WebhookSecret,
		apiToken:        cfg.APIToken,
		discordHandler:  cfg.DiscordHandler,
		commandHandler:  cfg.CommandHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{
		WebhookSecret: cfg.WebhookSecret,
		APIToken:      cfg.APIToken,
	})
	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.discordHandler != nil && srv.webhookSecret == "" {
		return errors.New("webhook secret is required for the discord webhook")
	}
	if srv.commandHandler != nil && srv.apiToken == "" {
		return errors.New("api token is required for the command API")
	}
	return nil
}
