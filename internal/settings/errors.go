package settings

import "errors"

var (
	ErrUnauthorized    = errors.New("not authorized")
	ErrInvalidProvider = errors.New("invalid provider")
	ErrInvalidModel    = errors.New("invalid model")
	ErrInvalidValue    = errors.New("invalid value")
)
