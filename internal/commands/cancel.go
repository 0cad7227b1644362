package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
)

func init() {
	RegisterSession(&CancelCmd{})
}

// CancelCmd abandons the current edit.
type CancelCmd struct{}

func (c *CancelCmd) Name() string      { return "cancel" }
func (c *CancelCmd) Aliases() []string { return []string{"clear"} }
func (c *CancelCmd) Synopsis() string  { return "Stop editing" }
func (c *CancelCmd) Usage() string     { return "cancel" }
func (c *CancelCmd) NeedsAuth() bool   { return false }

func (c *CancelCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CancelCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	env.Session.Cancel()
	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
