package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/output"
)

func init() {
	RegisterSession(&ListCmd{})
}

// ListCmd prints the session's tasks.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Print tasks (* marks the task being edited)" }
func (c *ListCmd) Usage() string     { return "list" }
func (c *ListCmd) NeedsAuth() bool   { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	snap := env.Session.Snapshot()
	if snap.Len() == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	editIndex, _ := snap.EditIndex()
	for i, task := range snap.Tasks() {
		output.FormatTask(out, i+1, task, i == editIndex)
	}
	return exitcode.Success
}
