package service

import (
	"errors"
	"fmt"
	"strings"
)

// Resolution errors shared by all backends.
var (
	ErrNotFound  = errors.New("list not found")
	ErrAmbiguous = errors.New("ambiguous list name")
)

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

// MatchList picks the list whose trimmed title equals name, ignoring case.
func MatchList(lists []TaskList, name string) (TaskList, error) {
	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	var matches []TaskList
	for _, l := range lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return TaskList{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return TaskList{}, fmt.Errorf("%w: %s", ErrAmbiguous, name)
	}
}
