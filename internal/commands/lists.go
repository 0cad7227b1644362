package commands

import (
	"context"
	"flag"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/output"
)

func init() {
	RegisterSession(&ListsCmd{})
}

// ListsCmd prints the Google Tasks lists export can target.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print Google Tasks lists" }
func (c *ListsCmd) Usage() string     { return "lists" }
func (c *ListsCmd) NeedsAuth() bool   { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	lists, err := env.Service.ListLists(ctx)
	if err != nil {
		return reportServiceError(errOut, err)
	}

	for _, list := range lists {
		output.FormatListName(out, list)
	}

	return exitcode.Success
}
