package command

import (
	"fmt"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/google/shlex"
)

// Command is a parsed chat command.
type Command struct {
	Name string
	Args []string
}

// Parse reads text as a prefixed command. ok is false when text is not addressed to a known
// command, in which case it is ordinary chat. Known commands with broken quoting return
// ok together with ErrInvalidSyntax.
func Parse(text, prefix string) (cmd Command, ok bool, err error) {
	text = strings.TrimSpace(text)
	if prefix == "" || !strings.HasPrefix(text, prefix) {
		return Command{}, false, nil
	}
	body := strings.TrimSpace(strings.TrimPrefix(text, prefix))

	name, rest, _ := strings.Cut(body, " ")
	name = strings.ToLower(name)
	if !pie.Contains(Names, name) {
		return Command{}, false, nil
	}

	args, err := shlex.Split(rest)
	if err != nil {
		return Command{Name: name}, true, fmt.Errorf("%w: %v", ErrInvalidSyntax, err)
	}
	return Command{Name: name, Args: args}, true, nil
}
