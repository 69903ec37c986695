package agent

import (
	"context"
	"sort"

	"discord-llm-bot/pkg/llmprovider"
)

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// Attachment is a file produced by a tool.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// AttachmentResult is implemented by tool results that carry files.
// Only the result returned by Summary is fed back to the model.
type AttachmentResult interface {
	Attachments() []Attachment
	Summary() interface{}
}

// ToolRegistry manages available tools. It is filled at startup and read-only afterwards.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// ToFunctionDefinitions converts the tools accepted by keep to LLM function calling format.
// A nil keep accepts every tool.
func (r *ToolRegistry) ToFunctionDefinitions(keep func(Tool) bool) []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.tools))
	for _, tool := range r.List() {
		if keep != nil && !keep(tool) {
			continue
		}
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}

// ToolNameGenerateImage is advertised only while image generation is switched on.
const ToolNameGenerateImage = "generate_image"
