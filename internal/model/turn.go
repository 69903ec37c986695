package model

// Role is the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a provider-requested tool invocation. Arguments holds the raw JSON object text.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Turn is one entry of a conversation history.
// Assistant turns that only request tools carry an empty Content and a non-empty ToolCalls.
// Tool turns carry the result in Content and point back to the call through ToolCallID.
// Videos holds video links sent to the model alongside a user turn's Content.
type Turn struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
	Videos     []string
}

// IsSystem reports whether t is the seeded system prompt turn.
func (t Turn) IsSystem() bool {
	return t.Role == RoleSystem
}

// SystemTurn builds the turn that seeds every new history.
func SystemTurn(prompt string) Turn {
	return Turn{Role: RoleSystem, Content: prompt}
}

// UserTurn builds a turn for an inbound user message.
func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// AssistantTurn builds a plain assistant reply turn.
func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}
