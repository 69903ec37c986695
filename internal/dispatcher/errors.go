package dispatcher

import "errors"

var (
	// ErrConfigMissing is returned by New when the completion backend is not configured.
	ErrConfigMissing = errors.New("dispatcher: provider not configured")
)
