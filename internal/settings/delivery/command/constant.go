package command

// Command names.
const (
	NameToggleLLM       = "toggle_llm"
	NameSelectProvider  = "select_provider"
	NameSetModel        = "set_model"
	NameSetTemp         = "set_temp"
	NameSetMaxTokens    = "set_max_tokens"
	NameSetMemory       = "set_memory"
	NameSetSystemPrompt = "set_system_prompt"
	NameToggleImageGen  = "toggle_image_gen"
	NameCurrentSettings = "llm_current_settings"
	NameResetMemory     = "reset_memory"
)

// Names lists every command in help order.
var Names = []string{
	NameToggleLLM,
	NameSelectProvider,
	NameSetModel,
	NameSetTemp,
	NameSetMaxTokens,
	NameSetMemory,
	NameSetSystemPrompt,
	NameToggleImageGen,
	NameCurrentSettings,
	NameResetMemory,
}

var usage = map[string]string{
	NameSelectProvider:  "select_provider <groq|gemini>",
	NameSetModel:        "set_model <model>",
	NameSetTemp:         "set_temp <0-2>",
	NameSetMaxTokens:    "set_max_tokens <n>",
	NameSetMemory:       "set_memory <n>",
	NameSetSystemPrompt: `set_system_prompt "<prompt>"`,
}

const (
	MsgUnauthorized  = "You are not authorized to use this command."
	MsgInternalError = "Something went wrong while running that command."
	MsgMemoryCleared = "Your conversation memory has been cleared."
)
