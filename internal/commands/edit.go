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
	RegisterSession(&EditCmd{})
}

// EditCmd selects a task for editing and prints its text. Given text, it
// also submits the replacement.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Select a task for editing" }
func (c *EditCmd) Usage() string     { return "edit <n> [text...]" }
func (c *EditCmd) NeedsAuth() bool   { return false }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	num, rest, err := ParseTaskNumber(args)
	if err != nil {
		return reportError(errOut, err, 0)
	}

	text, err := env.Session.ChooseEdit(num - 1)
	if err != nil {
		return reportError(errOut, err, num)
	}

	if len(rest) == 0 {
		fmt.Fprintln(out, text)
		return exitcode.Success
	}
	return submit(env, strings.Join(rest, " "), out, errOut)
}
