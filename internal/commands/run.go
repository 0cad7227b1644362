package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/logging"
	"todolist/internal/session"
	"todolist/internal/store"
	"todolist/internal/tui"
)

func init() {
	Register(&RunCmd{})
}

// RunCmd starts a session: the terminal UI when attached to a terminal,
// otherwise the line shell.
type RunCmd struct {
	plain    bool
	failFast bool
}

func (c *RunCmd) Name() string      { return "run" }
func (c *RunCmd) Aliases() []string { return nil }
func (c *RunCmd) Synopsis() string  { return "Start a to-do session" }
func (c *RunCmd) Usage() string     { return "todolist run [common flags] [--plain] [--fail-fast]" }
func (c *RunCmd) NeedsAuth() bool   { return false }

func (c *RunCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.plain, "plain", false, "")
	fs.BoolVar(&c.failFast, "fail-fast", false, "")
}

func (c *RunCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	interactive := tui.IsTTY(env.In) && tui.IsTTY(out)
	logger := env.log()
	if interactive && !c.plain && env.Config.LogFile == "" {
		// Log lines would draw over the UI.
		logger = logging.Discard()
	}

	sessEnv := *env
	sessEnv.Logger = logger
	sessEnv.Session = session.New(store.New(), logger)

	if interactive && !c.plain {
		logger.Debug("starting terminal UI")
		if err := tui.Run(ctx, sessEnv.Session, env.Config.UI); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	opts := ShellOptions{FailFast: c.failFast}
	if interactive {
		opts.Prompt = "> "
	}
	logger.Debug("starting line shell", "fail_fast", c.failFast)
	return RunShell(ctx, &sessEnv, SessionRegistry, env.In, out, errOut, opts)
}
