package http

import (
	"github.com/gin-gonic/gin"

	"discord-llm-bot/internal/settings/delivery/command"
	pkgLog "discord-llm-bot/pkg/log"
)

// Handler exposes the chat commands to operators over HTTP.
type Handler interface {
	RunCommand(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	commands command.Runner
}

func New(l pkgLog.Logger, commands command.Runner) Handler {
	return &handler{l: l, commands: commands}
}

// RegisterRoutes mounts the command API on r.
func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/commands", h.RunCommand)
}
