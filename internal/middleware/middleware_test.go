package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-llm-bot/pkg/log"
)

const (
	testSecret = "webhook-secret"
	testToken  = "operator-token"
)

var fixedNow = time.Unix(1_760_000_000, 0)

func newTestRouter(t *testing.T) (*gin.Engine, *[]byte) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := New(log.NewNop(), Config{WebhookSecret: testSecret, APIToken: testToken})
	m.now = func() time.Time { return fixedNow }

	var received []byte
	r := gin.New()
	r.POST("/webhook", m.VerifyWebhookSignature(), func(c *gin.Context) {
		received, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})
	r.POST("/api", m.RequireAPIToken(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, &received
}

func signedRequest(body, secret string, at time.Time) *http.Request {
	ts := strconv.FormatInt(at.Unix(), 10)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set(HeaderTimestamp, ts)
	req.Header.Set(HeaderSignature, Sign(secret, ts, []byte(body)))
	return req
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := `{"id":"m1","content":"hi"}`

	tests := []struct {
		name string
		req  func() *http.Request
		want int
	}{
		{"valid signature", func() *http.Request { return signedRequest(body, testSecret, fixedNow) }, http.StatusOK},
		{"missing headers", func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
		}, http.StatusUnauthorized},
		{"wrong secret", func() *http.Request { return signedRequest(body, "guess", fixedNow) }, http.StatusUnauthorized},
		{"stale timestamp", func() *http.Request {
			return signedRequest(body, testSecret, fixedNow.Add(-10*time.Minute))
		}, http.StatusUnauthorized},
		{"tampered body", func() *http.Request {
			req := signedRequest(body, testSecret, fixedNow)
			req.Body = io.NopCloser(bytes.NewBufferString(`{"id":"m1","content":"pwned"}`))
			return req
		}, http.StatusUnauthorized},
		{"malformed signature", func() *http.Request {
			req := signedRequest(body, testSecret, fixedNow)
			req.Header.Set(HeaderSignature, "md5=abc")
			return req
		}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, received := newTestRouter(t)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, tt.req())

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, body, string(*received), "body is restored for the handler")
			} else {
				assert.Nil(t, *received, "handler must not run")
			}
		})
	}
}

func TestRequireAPIToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + testToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + testToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t)
			req := httptest.NewRequest(http.MethodPost, "/api", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestVerify_UnconfiguredSecretsRejectEverything(t *testing.T) {
	err := verifySignature("", []byte("x"), "1", "sha256=00", fixedNow, time.Minute)
	require.ErrorIs(t, err, ErrNotConfigured)

	require.ErrorIs(t, verifyToken("", "Bearer "), ErrNotConfigured)
}
