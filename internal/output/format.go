// Package output provides text formatters for task rows and list names.
package output

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/service"
)

// EditMarker replaces the first separator space on the row being edited.
const EditMarker = '*'

// FormatTask formats a task line.
// Format: "{N:>4}  {TITLE}\n" (4-wide right-aligned number, two spaces, title).
// The row under the edit cursor reads "{N:>4}* {TITLE}\n".
func FormatTask(w io.Writer, num int, title string, editing bool) {
	sep := ' '
	if editing {
		sep = EditMarker
	}
	fmt.Fprintf(w, "%4d%c %s\n", num, sep, NormalizeTitle(title))
}

// FormatListName formats a remote list name for the lists command.
func FormatListName(w io.Writer, list service.TaskList) {
	title := normalizeListTitle(list.Title)
	if list.IsDefault {
		title += " [default]"
	}
	fmt.Fprintln(w, title)
}

// NormalizeTitle normalizes a task title for single-line display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
