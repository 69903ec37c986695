package discord

import "context"

// IBot is the outbound surface of the Discord REST API used by the bot.
type IBot interface {
	SendMessage(ctx context.Context, channelID, content, replyTo string) (Message, error)
	SendFiles(ctx context.Context, channelID, content, replyTo string, files []File) (Message, error)
	TriggerTyping(ctx context.Context, channelID string) error
	CurrentUser(ctx context.Context) (User, error)
}
