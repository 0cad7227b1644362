// Package commands provides the command interface, the process and session
// command sets, and the line shell that drives a session.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/service"
	"todolist/internal/session"
)

// ServiceFactory creates the remote Service on first use.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Env is everything a command may need besides its arguments.
type Env struct {
	Config *config.Config
	Logger *log.Logger

	// Session is nil for process commands.
	Session *session.Session

	// Service is resolved through Factory before a command that
	// NeedsAuth runs, and reused for the rest of the session.
	Service service.Service
	Factory ServiceFactory

	// In is read by the line shell.
	In io.Reader
}

// Command defines the interface for process and session commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// env.Service is nil if NeedsAuth() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

var discardLogger = log.New(io.Discard)

// log returns the env's logger, or one that discards when none is set.
func (e *Env) log() *log.Logger {
	if e.Logger == nil {
		return discardLogger
	}
	return e.Logger
}
