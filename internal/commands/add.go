package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/exitcode"
)

func init() {
	RegisterSession(&AddCmd{})
}

// AddCmd submits text: a new task when idle, a replacement when editing.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"submit"} }
func (c *AddCmd) Synopsis() string  { return "Add a task, or update the task being edited" }
func (c *AddCmd) Usage() string     { return "add <text...>" }
func (c *AddCmd) NeedsAuth() bool   { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	return submit(env, strings.Join(args, " "), out, errOut)
}

// submit is shared by add and edit-with-text.
func submit(env *Env, text string, out, errOut io.Writer) int {
	outcome, err := env.Session.Submit(text)
	if err != nil {
		return reportError(errOut, err, 0)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "%s %d\n", outcome.Action, outcome.Index+1)
	}
	return exitcode.Success
}
