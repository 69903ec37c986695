package settings

import "discord-llm-bot/pkg/llmprovider"

// State is the process-wide inference configuration.
type State struct {
	ActiveProvider   string
	Model            string
	Temperature      float64
	MaxTokens        int
	SystemPrompt     string
	InferenceEnabled bool
	MemoryLimit      int
	ImageGeneration  bool
}

// CurrentOutput is the answer to a settings query.
type CurrentOutput struct {
	State           State
	UsersWithMemory int
}

// Providers lists the selectable backends in display order.
var Providers = []string{llmprovider.ProviderGroq, llmprovider.ProviderGemini}

// AllowedModels is the per-provider model allow-list accepted by SetModel.
var AllowedModels = map[string][]string{
	llmprovider.ProviderGroq: {
		"llama-3.3-70b-versatile",
		"llama-3.1-8b-instant",
		"llama-guard-3-8b",
		"meta-llama/llama-4-scout-17b-16e-instruct",
		"gemma2-9b-it",
	},
	llmprovider.ProviderGemini: {
		"gemini-2.5-pro",
		"gemini-2.0-flash",
		"gemini-2.0-pro",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	},
}

// DefaultModels is the model a provider switch lands on.
var DefaultModels = map[string]string{
	llmprovider.ProviderGroq:   "meta-llama/llama-4-scout-17b-16e-instruct",
	llmprovider.ProviderGemini: "gemini-2.5-pro",
}

// Temperature bounds accepted by SetTemperature.
const (
	MinTemperature = 0.0
	MaxTemperature = 2.0
)
