package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"discord-llm-bot/internal/settings"
	"discord-llm-bot/internal/settings/delivery/command"
	pkgResponse "discord-llm-bot/pkg/response"
)

// mapError picks the status for a failed command. reply is already user-facing.
func (h *handler) mapError(c *gin.Context, reply string, err error) {
	switch {
	case errors.Is(err, settings.ErrUnauthorized):
		pkgResponse.Forbidden(c, reply)
	case errors.Is(err, settings.ErrInvalidProvider),
		errors.Is(err, settings.ErrInvalidModel),
		errors.Is(err, settings.ErrInvalidValue),
		errors.Is(err, command.ErrUsage),
		errors.Is(err, command.ErrUnknownCommand):
		c.JSON(http.StatusBadRequest, pkgResponse.Resp{ErrorCode: 1, Message: reply})
	default:
		pkgResponse.InternalError(c, err)
	}
}
