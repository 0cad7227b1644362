package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"todolist/internal/exitcode"
	"todolist/internal/store"
)

// ErrTaskRefRequired indicates no task number was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskNumber reads the 1-based task number at the front of args and
// returns it with the remaining args. The number is not range-checked; the
// store does that.
func ParseTaskNumber(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, ErrTaskRefRequired
	}
	if !isAllDigits(args[0]) {
		return 0, nil, fmt.Errorf("invalid task reference: %s", args[0])
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return num, args[1:], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// reportError prints a session or store error and returns its exit code.
// session.ErrEmptyText and parse errors print as-is.
// num is the 1-based task number the user gave, if any.
func reportError(errOut io.Writer, err error, num int) int {
	if errors.Is(err, store.ErrOutOfRange) {
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", num)
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.UserError
}
