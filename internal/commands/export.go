package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/service"
)

func init() {
	RegisterSession(&ExportCmd{})
}

// ExportCmd copies the session's tasks to a Google Tasks list.
// It never modifies the session.
type ExportCmd struct {
	listName string
	create   bool
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *ExportCmd) Usage() string     { return "export [--list <list-name>] [--create]" }
func (c *ExportCmd) NeedsAuth() bool   { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.BoolVar(&c.create, "create", false, "")
}

func (c *ExportCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := env.Session.Snapshot().Tasks()
	if len(tasks) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "nothing to export")
		}
		return exitcode.Success
	}

	listName := c.listName
	if listName == "" {
		listName = env.Config.Export.List
	}

	list, code := c.resolveList(ctx, env.Service, listName, errOut)
	if code != exitcode.Success {
		return code
	}

	// Inserts land at the top of the remote list, so push the last task
	// first to keep session order.
	for i := len(tasks) - 1; i >= 0; i-- {
		if err := env.Service.CreateTask(ctx, list.ID, tasks[i]); err != nil {
			return reportServiceError(errOut, err)
		}
	}

	env.log().Info("exported tasks", "count", len(tasks), "list", list.Title)
	if !env.Config.Quiet {
		fmt.Fprintf(out, "exported %d tasks to %s\n", len(tasks), list.Title)
	}
	return exitcode.Success
}

func (c *ExportCmd) resolveList(ctx context.Context, svc service.Service, name string, errOut io.Writer) (service.TaskList, int) {
	if name == "" {
		list, err := svc.DefaultList(ctx)
		if err != nil {
			return service.TaskList{}, reportServiceError(errOut, err)
		}
		return list, exitcode.Success
	}

	list, err := svc.ResolveList(ctx, name)
	switch {
	case err == nil:
		return list, exitcode.Success
	case errors.Is(err, service.ErrNotFound) && c.create:
		list, err = svc.CreateList(ctx, name)
		if err != nil {
			return service.TaskList{}, reportServiceError(errOut, err)
		}
		return list, exitcode.Success
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(errOut, "error: list not found: %s\n", name)
		return service.TaskList{}, exitcode.UserError
	case errors.Is(err, service.ErrAmbiguous):
		fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", name)
		return service.TaskList{}, exitcode.UserError
	default:
		return service.TaskList{}, reportServiceError(errOut, err)
	}
}
