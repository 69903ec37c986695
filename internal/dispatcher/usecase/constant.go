package usecase

// User-visible texts
const (
	MsgFailureNotice = "woopsies somethin happen"
	MsgEmptyResponse = "The model did not return a text response."
	MsgToolFailed    = "Tool %s failed: %s"

	MsgDefaultVideoPrompt = "Summarize the video."
	MsgVideoUnsupported   = "The current model (`%s`) does not support video input. Please switch to a model like %s using set_model to process videos."
)

// Log messages
const (
	LogPrefixHandleInbound = "dispatcher.HandleInbound"
	LogPrefixRunTools      = "dispatcher.runTools"
)
