package discord

import (
	"errors"
	"fmt"
)

var ErrMissingToken = errors.New("discord bot token is required")

// TransportError is an outbound call to the REST API that did not succeed.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("discord %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("discord %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
