package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/exitcode"
)

// MaxLineSize is the longest input line the shell accepts.
const MaxLineSize = 1 << 20

// ShellOptions controls RunShell.
type ShellOptions struct {
	// FailFast ends the shell at the first command that fails.
	FailFast bool

	// Prompt is printed before each line when non-empty.
	Prompt string
}

// RunShell reads commands from in, one per line, and runs them against
// env.Session using reg. Blank lines and lines starting with # are skipped;
// quit or exit ends the session. The result is the exit code of the last
// command run. The context is checked between lines.
func RunShell(ctx context.Context, env *Env, reg *Registry, in io.Reader, out, errOut io.Writer, opts ShellOptions) int {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	code := exitcode.Success

	for ctx.Err() == nil {
		if opts.Prompt != "" {
			fmt.Fprint(out, opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == "quit" || fields[0] == "exit" {
			return code
		}

		code = runLine(ctx, env, reg, fields, out, errOut)
		if code != exitcode.Success && opts.FailFast {
			env.log().Debug("stopping at failed command", "command", fields[0], "code", code)
			return code
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			fmt.Fprintf(errOut, "error: input line longer than %d bytes\n", MaxLineSize)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: reading input: %v\n", err)
		return exitcode.UserError
	}
	return code
}

func runLine(ctx context.Context, env *Env, reg *Registry, fields []string, out, errOut io.Writer) int {
	cmd, ok := reg.Find(fields[0])
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", fields[0])
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)

	args, err := ParseFlags(fs, fields[1:])
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	return Invoke(ctx, cmd, env, args, out, errOut)
}
