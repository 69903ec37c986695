package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

const (
	DefaultAPIURL  = "https://discord.com/api/v10"
	DefaultTimeout = 30 * time.Second
)

// Bot is the Discord REST API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Discord Bot client with the given token.
func NewBot(token string) (*Bot, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	return &Bot{
		token:      token,
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// SetAPIURL overrides the default Discord API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	if url != "" {
		b.apiURL = url
	}
}

// SendMessage posts content to a channel, replying to replyTo when set.
func (b *Bot) SendMessage(ctx context.Context, channelID, content, replyTo string) (Message, error) {
	body, err := json.Marshal(newCreateMessage(content, replyTo))
	if err != nil {
		return Message{}, &TransportError{Op: "send message", Err: fmt.Errorf("failed to marshal message: %w", err)}
	}

	var msg Message
	url := fmt.Sprintf("%s/channels/%s/messages", b.apiURL, channelID)
	if err := b.do(ctx, "send message", http.MethodPost, url, "application/json", bytes.NewReader(body), &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// SendFiles posts content together with files as a multipart upload.
func (b *Bot) SendFiles(ctx context.Context, channelID, content, replyTo string, files []File) (Message, error) {
	payload := newCreateMessage(content, replyTo)
	for i, f := range files {
		payload.Attachments = append(payload.Attachments, AttachmentRef{ID: i, Filename: f.Name})
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return Message{}, &TransportError{Op: "send files", Err: fmt.Errorf("failed to marshal message: %w", err)}
	}
	if err := w.WriteField("payload_json", string(payloadJSON)); err != nil {
		return Message{}, &TransportError{Op: "send files", Err: err}
	}

	for i, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files[%d]"; filename=%q`, i, f.Name))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return Message{}, &TransportError{Op: "send files", Err: err}
		}
		if _, err := part.Write(f.Data); err != nil {
			return Message{}, &TransportError{Op: "send files", Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return Message{}, &TransportError{Op: "send files", Err: err}
	}

	var msg Message
	url := fmt.Sprintf("%s/channels/%s/messages", b.apiURL, channelID)
	if err := b.do(ctx, "send files", http.MethodPost, url, w.FormDataContentType(), &buf, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// TriggerTyping shows the typing indicator in a channel for a few seconds.
func (b *Bot) TriggerTyping(ctx context.Context, channelID string) error {
	url := fmt.Sprintf("%s/channels/%s/typing", b.apiURL, channelID)
	return b.do(ctx, "trigger typing", http.MethodPost, url, "", nil, nil)
}

// CurrentUser returns the bot's own user.
func (b *Bot) CurrentUser(ctx context.Context) (User, error) {
	var u User
	url := fmt.Sprintf("%s/users/@me", b.apiURL)
	if err := b.do(ctx, "current user", http.MethodGet, url, "", nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (b *Bot) do(ctx context.Context, op, method, url, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bot "+b.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr APIError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(apiErr.Message)}
		}
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("API error: %s", string(raw))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func newCreateMessage(content, replyTo string) CreateMessageRequest {
	req := CreateMessageRequest{
		Content:         content,
		AllowedMentions: &AllowedMentions{Parse: []string{}, RepliedUser: true},
	}
	if replyTo != "" {
		req.MessageReference = &MessageReference{MessageID: replyTo}
	}
	return req
}

var _ IBot = (*Bot)(nil)
