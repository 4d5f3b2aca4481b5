package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

const prefix = "cmd "

var (
	ErrMissingCommand = errors.New("missing subcommand")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state and fs.Args().
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a flag set that reports errors instead of exiting and prints nothing.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "select").
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Usage returns one usage line per command, sorted by name.
func (r *Registry) Usage() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, fmt.Sprintf("cmd %s %s", n, r.cmds[n].Usage))
	}
	return out
}

// Parse interprets line as a console line. If it starts with "cmd ", the rest is split like a
// shell would (quotes group words) and returned with ok true.
func Parse(line string) (args []string, ok bool, err error) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false, nil
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true, nil
	}
	args, err = shellwords.Parse(rest)
	if err != nil {
		return nil, true, fmt.Errorf("parse %q: %w", rest, err)
	}
	return args, true, nil
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run()
}

// ParseOnOff parses the argument of toggle commands like "cmd fps on".
func ParseOnOff(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("expected on or off")
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", args[0])
}
