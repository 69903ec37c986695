package discord

// MessageEvent is a MESSAGE_CREATE dispatch as relayed from the gateway.
type MessageEvent struct {
	ID                string            `json:"id"`
	ChannelID         string            `json:"channel_id"`
	GuildID           string            `json:"guild_id,omitempty"`
	Author            User              `json:"author"`
	Member            *Member           `json:"member,omitempty"`
	Content           string            `json:"content"`
	Mentions          []User            `json:"mentions,omitempty"`
	MessageReference  *MessageReference `json:"message_reference,omitempty"`
	ReferencedMessage *MessageEvent     `json:"referenced_message,omitempty"`
}

// User represents a Discord user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bot      bool   `json:"bot,omitempty"`
}

// Member carries the guild-specific part of the author.
type Member struct {
	Roles []string `json:"roles"`
}

// MessageReference points a message at the one it replies to.
type MessageReference struct {
	MessageID string `json:"message_id"`
	ChannelID string `json:"channel_id,omitempty"`
	GuildID   string `json:"guild_id,omitempty"`
}

// AllowedMentions limits who a bot message pings.
type AllowedMentions struct {
	Parse       []string `json:"parse"`
	RepliedUser bool     `json:"replied_user"`
}

// File is an attachment uploaded with a message.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// CreateMessageRequest is the payload for POST /channels/{id}/messages.
type CreateMessageRequest struct {
	Content          string            `json:"content,omitempty"`
	MessageReference *MessageReference `json:"message_reference,omitempty"`
	AllowedMentions  *AllowedMentions  `json:"allowed_mentions,omitempty"`
	Attachments      []AttachmentRef   `json:"attachments,omitempty"`
}

// AttachmentRef links a multipart file part to the message payload.
type AttachmentRef struct {
	ID       int    `json:"id"`
	Filename string `json:"filename"`
}

// Message is the subset of a created message the bot reads back.
type Message struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
}

// APIError is the error body of the REST API.
type APIError struct {
	Code       int     `json:"code"`
	Message    string  `json:"message"`
	RetryAfter float64 `json:"retry_after,omitempty"`
}
