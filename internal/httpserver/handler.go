package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"discord-llm-bot/internal/model"
	settingsHTTP "discord-llm-bot/internal/settings/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.discordHandler != nil {
		srv.gin.POST("/webhook/discord", srv.mw.VerifyWebhookSignature(), srv.discordHandler.HandleWebhook)
		srv.l.Infof(ctx, "Discord webhook route registered at POST /webhook/discord")
	} else {
		srv.l.Infof(ctx, "Discord handler not configured, skipping webhook route")
	}

	if srv.commandHandler != nil {
		settingsHTTP.RegisterRoutes(srv.gin.Group("/api/v1", srv.mw.RequireAPIToken()), srv.commandHandler)
		srv.l.Infof(ctx, "Command API registered at POST /api/v1/commands")
	}
}
