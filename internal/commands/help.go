package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
	RegisterSession(&SessionHelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todolist help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

// SessionHelpCmd lists the commands the line shell accepts.
type SessionHelpCmd struct{}

func (c *SessionHelpCmd) Name() string      { return "help" }
func (c *SessionHelpCmd) Aliases() []string { return []string{"?"} }
func (c *SessionHelpCmd) Synopsis() string  { return "Print this help" }
func (c *SessionHelpCmd) Usage() string     { return "help" }
func (c *SessionHelpCmd) NeedsAuth() bool   { return false }

func (c *SessionHelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SessionHelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range SessionRegistry.All() {
		fmt.Fprintf(out, "  %-40s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprintf(out, "  %-40s %s\n", "quit", "End the session")
	return exitcode.Success
}

const helpText = `Usage:
  todolist [run] [common flags] [--plain] [--fail-fast]
  todolist login [common flags]
  todolist logout [common flags]
  todolist help
  todolist version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs

Run flags:
  --plain          Read commands from stdin instead of starting the UI
  --fail-fast      Stop at the first failing command

Type "help" inside a session for its commands.
`
