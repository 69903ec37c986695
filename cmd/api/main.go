package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"discord-llm-bot/config"
	_ "discord-llm-bot/docs" // Swagger docs
	"discord-llm-bot/internal/agent"
	"discord-llm-bot/internal/agent/tools"
	"discord-llm-bot/internal/dispatcher"
	discordDelivery "discord-llm-bot/internal/dispatcher/delivery/discord"
	dispatcherUC "discord-llm-bot/internal/dispatcher/usecase"
	"discord-llm-bot/internal/httpserver"
	"discord-llm-bot/internal/memory"
	"discord-llm-bot/internal/settings"
	"discord-llm-bot/internal/settings/delivery/command"
	settingsHTTP "discord-llm-bot/internal/settings/delivery/http"
	settingsUC "discord-llm-bot/internal/settings/usecase"
	pkgDiscord "discord-llm-bot/pkg/discord"
	"discord-llm-bot/pkg/gemini"
	"discord-llm-bot/pkg/llmprovider"
	"discord-llm-bot/pkg/log"
	"discord-llm-bot/pkg/tavily"
)

// @title       Discord LLM Bot API
// @description LLM chat dispatcher for Discord with Groq and Gemini backends.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Discord LLM bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Settings and memory
	initialModel := cfg.LLM.ProviderModel(cfg.Inference.Provider)
	if initialModel == "" {
		initialModel = settings.DefaultModels[cfg.Inference.Provider]
	}
	store := settings.NewStore(settings.State{
		ActiveProvider:   cfg.Inference.Provider,
		Model:            initialModel,
		Temperature:      cfg.Inference.Temperature,
		MaxTokens:        cfg.Inference.MaxTokens,
		SystemPrompt:     cfg.Inference.SystemPrompt,
		InferenceEnabled: cfg.Inference.Enabled,
		MemoryLimit:      cfg.Inference.MemoryLimit,
		ImageGeneration:  cfg.Inference.ImageGeneration,
	})
	mem := memory.New(store, memory.Config{
		TTL:      cfg.Inference.MemoryTTL,
		MaxUsers: cfg.Inference.MaxUsers,
	}, logger)

	if len(cfg.Auth.UserIDs) == 0 && len(cfg.Auth.RoleIDs) == 0 {
		logger.Warn(ctx, "No authorized users or roles configured, settings commands are locked")
	}
	settingsUseCase := settingsUC.New(store, settings.NewAuthorizer(cfg.Auth.UserIDs, cfg.Auth.RoleIDs), mem, logger)
	commands := command.NewRunner(settingsUseCase, logger)

	// 4. LLM providers, one dispatcher each
	managers, err := llmprovider.InitializeManagers(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers", "error", err.Error())
		return
	}

	registry := buildTools(ctx, cfg, logger)

	var dispatchers []dispatcher.UseCase
	for _, m := range managers {
		var videoModels []string
		if m.Name() == llmprovider.ProviderGemini {
			videoModels = cfg.Inference.VideoCapableModels
		}
		d, err := dispatcherUC.New(dispatcherUC.Config{
			Provider:           m.Name(),
			Completer:          m,
			Settings:           store,
			Memory:             mem,
			Registry:           registry,
			ToolCapableModels:  cfg.Tools.CapableModels,
			VideoCapableModels: videoModels,
		}, logger)
		if err != nil {
			logger.Error(ctx, "Failed to create dispatcher", "provider", m.Name(), "error", err.Error())
			return
		}
		dispatchers = append(dispatchers, d)
		logger.Infof(ctx, "Dispatcher ready: %s (models %v)", m.Name(), m.Models(""))
	}

	// 5. Discord delivery
	var discordHandler discordDelivery.Handler
	if cfg.Discord.BotToken != "" {
		bot, err := pkgDiscord.NewBot(cfg.Discord.BotToken)
		if err != nil {
			logger.Error(ctx, "Failed to create Discord client", "error", err.Error())
			return
		}
		if cfg.Discord.APIURL != "" {
			bot.SetAPIURL(cfg.Discord.APIURL)
		}

		botUserID := cfg.Discord.BotUserID
		if botUserID == "" {
			me, err := bot.CurrentUser(ctx)
			if err != nil {
				logger.Error(ctx, "Failed to resolve bot user, set discord.bot_user_id", "error", err.Error())
				return
			}
			botUserID = me.ID
		}

		discordHandler = discordDelivery.New(logger, bot, dispatchers, commands, discordDelivery.Config{
			BotUserID:       botUserID,
			CommandPrefix:   cfg.Discord.CommandPrefix,
			RateLimitPerMin: cfg.Discord.RateLimitPerMin,
		})
		logger.Infof(ctx, "Discord delivery ready for bot %s", botUserID)
	} else {
		logger.Warn(ctx, "Discord delivery skipped: DISCORD_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	var commandHandler settingsHTTP.Handler
	if cfg.Auth.APIToken != "" {
		commandHandler = settingsHTTP.New(logger, commands)
	} else {
		logger.Warn(ctx, "Command API disabled: auth.api_token is missing")
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookSecret:  cfg.Discord.WebhookSecret,
		APIToken:       cfg.Auth.APIToken,
		DiscordHandler: discordHandler,
		CommandHandler: commandHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server", "error", err.Error())
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server", "error", err.Error())
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildTools registers the tools whose backing services are configured.
func buildTools(ctx context.Context, cfg *config.Config, logger log.Logger) *agent.ToolRegistry {
	if !cfg.Tools.Enabled {
		logger.Info(ctx, "Tools disabled")
		return nil
	}

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewGetCurrentTimeTool(cfg.Tools.DefaultTimezone, logger))

	if cfg.Tools.TavilyAPIKey != "" {
		client, err := tavily.New(cfg.Tools.TavilyAPIKey)
		if err != nil {
			logger.Warn(ctx, "Web search unavailable", "error", err.Error())
		} else {
			if cfg.Tools.TavilyURL != "" {
				client = client.WithBaseURL(cfg.Tools.TavilyURL)
			}
			registry.Register(tools.NewWebSearchTool(client, logger))
		}
	}

	for _, p := range cfg.LLM.Providers {
		if p.Name != llmprovider.ProviderGemini || p.APIKey == "" {
			continue
		}
		client, err := gemini.New(ctx, gemini.Config{APIKey: p.APIKey, BaseURL: p.BaseURL, Timeout: p.Timeout})
		if err != nil {
			logger.Warn(ctx, "Image generation unavailable", "error", err.Error())
			break
		}
		registry.Register(tools.NewGenerateImageTool(client, cfg.Tools.ImageModel, logger))
		break
	}

	for _, t := range registry.List() {
		logger.Infof(ctx, "Tool registered: %s", t.Name())
	}
	return registry
}
