package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/backend/googletasks"
	"todolist/internal/exitcode"
)

// ParseFlags parses args into fs and returns the positional arguments.
// When fs defines no flags, args are returned as given so that text such as
// "-5 degrees" reaches the command.
// Errors carry the user-facing message without the "error: " prefix.
func ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	if !hasFlags(fs) {
		return args, nil
	}
	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
			parts := strings.Split(errStr, ":")
			if len(parts) > 1 {
				return nil, fmt.Errorf("flag needs an argument:%s", parts[len(parts)-1])
			}
		}

		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			return nil, fmt.Errorf("unknown flag: %s", flagName)
		}

		return nil, err
	}
	return fs.Args(), nil
}

func hasFlags(fs *flag.FlagSet) bool {
	defined := false
	fs.VisitAll(func(*flag.Flag) { defined = true })
	return defined
}

// Invoke resolves the remote service when cmd needs it, then runs cmd.
func Invoke(ctx context.Context, cmd Command, env *Env, args []string, out, errOut io.Writer) int {
	if cmd.NeedsAuth() && env.Service == nil {
		if env.Factory == nil {
			fmt.Fprintln(errOut, "error: backend error: no backend configured")
			return exitcode.BackendError
		}
		svc, err := env.Factory(ctx, env.Config)
		if err != nil {
			return reportServiceError(errOut, err)
		}
		env.Service = svc
	}
	return cmd.Run(ctx, env, args, out, errOut)
}

// reportServiceError prints a remote failure. Auth failures exit 2, anything
// else is a backend error.
func reportServiceError(errOut io.Writer, err error) int {
	if isAuthError(err) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}

func isAuthError(err error) bool {
	return errors.Is(err, googletasks.ErrAuth) ||
		errors.Is(err, googletasks.ErrNotLoggedIn) ||
		errors.Is(err, googletasks.ErrNoClientCredentials)
}
