package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"todolist/internal/commands"
	"todolist/internal/exitcode"
	"todolist/internal/testutil"
)

func runShell(t *testing.T, env *commands.Env, input string, opts commands.ShellOptions) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = commands.RunShell(context.Background(), env, commands.SessionRegistry, strings.NewReader(input), &outBuf, &errBuf, opts)
	return outBuf.String(), errBuf.String(), code
}

func TestRunShell_Transcript(t *testing.T) {
	env := newEnv(t, nil, false)
	var tr testutil.Transcript

	lines := []string{
		"add Buy milk",
		"add Walk dog",
		"edit 1",
		"list",
		"submit Buy oat milk",
		"rm 5",
		"delete 2",
		"ls",
	}
	for _, line := range lines {
		stdout, stderr, code := runShell(t, env, line+"\n", commands.ShellOptions{})
		tr.Record(line, stdout, stderr, code)
	}

	testutil.Golden(t, "shell_transcript", tr.String())
}

func TestRunShell_SkipsBlankAndComments(t *testing.T) {
	env := newEnv(t, nil, false)

	input := "\n# shopping\n   \nadd  eggs   and  ham \nlist\n"
	stdout, stderr, code := runShell(t, env, input, commands.ShellOptions{})

	assertResult(t, stdout, stderr, code, "added 1\n   1  eggs and ham\n", "", exitcode.Success)
}

func TestRunShell_ExitCodeIsLastCommand(t *testing.T) {
	env := newEnv(t, nil, false)

	_, stderr, code := runShell(t, env, "rm 1\nadd x\n", commands.ShellOptions{})
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "error: task number out of range: 1\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}

	_, _, code = runShell(t, env, "add y\nrm 9\n", commands.ShellOptions{})
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
}

func TestRunShell_FailFast(t *testing.T) {
	env := newEnv(t, nil, false)

	stdout, stderr, code := runShell(t, env, "add a\nbogus\nadd b\n", commands.ShellOptions{FailFast: true})

	assertResult(t, stdout, stderr, code, "added 1\n", "error: unknown command: bogus\n", exitcode.UserError)
	if env.Session.Snapshot().Len() != 1 {
		t.Error("commands after the failure should not run")
	}
}

func TestRunShell_Quit(t *testing.T) {
	env := newEnv(t, nil, false)

	stdout, _, code := runShell(t, env, "add a\nquit\nadd b\n", commands.ShellOptions{})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "added 1\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if env.Session.Snapshot().Len() != 1 {
		t.Error("lines after quit should not run")
	}
}

func TestRunShell_Prompt(t *testing.T) {
	env := newEnv(t, nil, true)

	stdout, _, _ := runShell(t, env, "add a\n", commands.ShellOptions{Prompt: "> "})

	if stdout != "> > " {
		t.Errorf("expected a prompt per read, got %q", stdout)
	}
}

func TestRunShell_FlagErrors(t *testing.T) {
	svc := testutil.NewFakeService()
	env := newEnv(t, svc, false)

	_, stderr, code := runShell(t, env, "export --list\n", commands.ShellOptions{})
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: flag needs an argument: -list\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRunShell_FlagsResetBetweenLines(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("work", "Work")
	env := newEnv(t, svc, true)

	_, stderr, code := runShell(t, env, "add a\nexport --list Work\nexport\n", commands.ShellOptions{FailFast: true})
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}

	if got := svc.Tasks("work"); len(got) != 1 {
		t.Errorf("work tasks = %q", got)
	}
	if got := svc.Tasks(testutil.DefaultListID); len(got) != 1 {
		t.Errorf("the second export should go to the default list, got %q", got)
	}
}

func TestRunShell_CancelledContext(t *testing.T) {
	env := newEnv(t, nil, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var outBuf, errBuf bytes.Buffer
	code := commands.RunShell(ctx, env, commands.SessionRegistry, strings.NewReader("add a\n"), &outBuf, &errBuf, commands.ShellOptions{})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if env.Session.Snapshot().Len() != 0 {
		t.Error("no line should run after cancellation")
	}
}

func TestRunShell_TextStartingWithDash(t *testing.T) {
	env := newEnv(t, nil, false)

	input := "add -5 degrees outside\nadd --help the neighbour\nedit 1 -4 degrees\nlist\n"
	stdout, stderr, code := runShell(t, env, input, commands.ShellOptions{})

	want := "added 1\nadded 2\nupdated 1\n   1  -4 degrees\n   2  --help the neighbour\n"
	assertResult(t, stdout, stderr, code, want, "", exitcode.Success)
}

func TestRunShell_LongLine(t *testing.T) {
	env := newEnv(t, nil, true)
	long := strings.Repeat("a", 100*1024)

	_, stderr, code := runShell(t, env, "add "+long+"\n", commands.ShellOptions{})
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	if got, _ := env.Session.Snapshot().Task(0); got != long {
		t.Errorf("task length = %d, want %d", len(got), len(long))
	}

	_, stderr, code = runShell(t, env, strings.Repeat("b", commands.MaxLineSize+1)+"\n", commands.ShellOptions{})
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "input line longer than") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
