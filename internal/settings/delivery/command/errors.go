package command

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidSyntax  = errors.New("invalid command syntax")
	ErrUsage          = errors.New("wrong arguments")
)
