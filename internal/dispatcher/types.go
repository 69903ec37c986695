package dispatcher

import "discord-llm-bot/internal/agent"

// Output is what a handled message produces for the chat transport.
// Chunks are sent in order. Attachments go out with the first chunk.
type Output struct {
	Chunks      []string
	Attachments []agent.Attachment
}

// Empty reports whether there is nothing to send.
func (o Output) Empty() bool {
	return len(o.Chunks) == 0 && len(o.Attachments) == 0
}
