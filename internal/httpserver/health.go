package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"discord-llm-bot/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "discord-llm-bot"
)

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once the chat webhook is wired.
// @Summary Readiness Check
// @Description Ready when the Discord webhook is configured
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Failure 503 {object} response.Resp{data=healthResp}
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.discordHandler == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "discord webhook not configured",
			Data:      newHealthResp("not_ready"),
		})
		return
	}
	response.OK(c, newHealthResp("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
