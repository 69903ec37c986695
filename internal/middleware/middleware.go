package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"discord-llm-bot/pkg/response"
)

const maxWebhookBody = 1 << 20

// VerifyWebhookSignature rejects discord events that are not signed with the webhook secret.
// The body is restored for the next handler.
func (m Middleware) VerifyWebhookSignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
		if err != nil {
			m.l.Warn(ctx, "middleware.VerifyWebhookSignature: unreadable body", "error", err.Error())
			response.Error(c, err, nil)
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(payload))

		err = verifySignature(m.webhookSecret, payload,
			c.GetHeader(HeaderTimestamp), c.GetHeader(HeaderSignature), m.now(), m.maxSkew)
		if err != nil {
			m.l.Warn(ctx, "middleware.VerifyWebhookSignature: rejected",
				"client_ip", c.ClientIP(),
				"error", err.Error(),
			)
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAPIToken guards the operator API with a static bearer token.
func (m Middleware) RequireAPIToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := verifyToken(m.apiToken, c.GetHeader("Authorization")); err != nil {
			m.l.Warn(c.Request.Context(), "middleware.RequireAPIToken: rejected",
				"client_ip", c.ClientIP(),
				"path", c.FullPath(),
				"error", err.Error(),
			)
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
