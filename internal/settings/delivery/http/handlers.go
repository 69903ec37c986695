package http

import (
	"github.com/gin-gonic/gin"

	pkgResponse "discord-llm-bot/pkg/response"
)

// RunCommand runs one settings command.
// @Summary Run a settings command
// @Description Runs the same commands as the chat prefix commands. The caller's ids are checked against the allow-lists.
// @Tags Settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer operator token"
// @Param request body commandReq true "Command"
// @Success 200 {object} pkgResponse.Resp{data=commandResp}
// @Failure 400 {object} pkgResponse.Resp
// @Failure 401 {object} pkgResponse.Resp
// @Failure 403 {object} pkgResponse.Resp
// @Router /api/v1/commands [post]
func (h *handler) RunCommand(c *gin.Context) {
	ctx := c.Request.Context()

	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	reply, err := h.commands.Run(ctx, req.toScope(), req.toCommand())
	if err != nil {
		h.mapError(c, reply, err)
		return
	}

	pkgResponse.OK(c, commandResp{Reply: reply})
}
