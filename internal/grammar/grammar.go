// Package grammar evaluates the fixed positional command grammar of the
// CLI: a handful of global flags, then a command keyword followed by its
// required and optional arguments in order.
package grammar

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrNotEnoughArguments = errors.New("not enough arguments")
	ErrCommandNotFound    = errors.New("command not found")
)

// Descriptor is the static shape of one command.
type Descriptor struct {
	ID       string
	Name     string
	Alias    string
	Required []string
	Options  []string
}

// Usage renders the descriptor as it appears in help text, for example
// "new | n <name> [directory]".
func (d Descriptor) Usage() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.Alias != "" {
		b.WriteString(" | " + d.Alias)
	}
	for _, r := range d.Required {
		b.WriteString(" <" + r + ">")
	}
	for _, o := range d.Options {
		b.WriteString(" [" + o + "]")
	}
	return b.String()
}

func (d Descriptor) matches(token string) bool {
	return token == d.Name || (d.Alias != "" && token == d.Alias)
}

// Result is either an Option or a Command.
type Result interface {
	isResult()
}

// Option reports a global flag found anywhere in the arguments.
type Option struct {
	Name string
}

// Command is a resolved command with its bound arguments. Options that
// were not supplied are absent from the map.
type Command struct {
	ID       string
	Required map[string]string
	Options  map[string]string
}

func (Option) isResult()  {}
func (Command) isResult() {}

// Evaluate resolves args against flags and commands. A flag anywhere in
// args wins over everything else. Otherwise the first argument selects
// the first descriptor whose name or alias matches, and the remaining
// arguments are bound positionally: all required names, then as many
// option names as there are arguments left. Extra arguments are ignored.
// args is not modified.
func Evaluate(commands []Descriptor, flags []string, args []string) (Result, error) {
	for _, flag := range flags {
		if slices.Contains(args, flag) {
			return Option{Name: flag}, nil
		}
	}

	if len(args) == 0 || args[0] == "" {
		return nil, ErrNotEnoughArguments
	}
	token, rest := args[0], args[1:]

	for _, cmd := range commands {
		if !cmd.matches(token) {
			continue
		}

		if len(rest) < len(cmd.Required) {
			return nil, ErrNotEnoughArguments
		}

		required := make(map[string]string, len(cmd.Required))
		for _, name := range cmd.Required {
			if rest[0] == "" {
				return nil, ErrNotEnoughArguments
			}
			required[name] = rest[0]
			rest = rest[1:]
		}

		options := make(map[string]string, len(cmd.Options))
		for _, name := range cmd.Options {
			if len(rest) == 0 || rest[0] == "" {
				break
			}
			options[name] = rest[0]
			rest = rest[1:]
		}

		return Command{ID: cmd.ID, Required: required, Options: options}, nil
	}

	return nil, ErrCommandNotFound
}
