// Package session translates user gestures into store operations.
//
// Front ends (the TUI and the line shell) never call the store's mutators
// directly; they go through a Session so that the empty-text policy and the
// submit-adds-or-updates rule live in one place.
package session

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/store"
)

// ErrEmptyText is returned by Submit when the text is empty after trimming.
var ErrEmptyText = errors.New("task text required")

// Action says what a submit did.
type Action int

const (
	// Added means the text was appended as a new task.
	Added Action = iota
	// Updated means the task under the edit cursor was replaced.
	Updated
)

func (a Action) String() string {
	switch a {
	case Added:
		return "added"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// Outcome describes a successful submit.
type Outcome struct {
	Action Action
	Index  int
}

// Session drives a store on behalf of one front end.
type Session struct {
	store  *store.Store
	logger *log.Logger
}

// New creates a session over st. A nil logger discards output.
func New(st *store.Store, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{store: st, logger: logger}
}

// Subscribe calls fn with each new store state until the returned func is
// called.
func (s *Session) Subscribe(fn func(store.Snapshot)) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// Snapshot returns the store's current state.
func (s *Session) Snapshot() store.Snapshot {
	return s.store.Snapshot()
}

// Submit adds text as a new task when idle, or replaces the task being
// edited. Text is stored as given; only the emptiness check trims it.
func (s *Session) Submit(text string) (Outcome, error) {
	if strings.TrimSpace(text) == "" {
		return Outcome{}, ErrEmptyText
	}

	if idx, editing := s.store.Snapshot().EditIndex(); editing {
		if err := s.store.EditTask(idx, text); err != nil {
			return Outcome{}, err
		}
		s.logger.Debug("task updated", "index", idx)
		return Outcome{Action: Updated, Index: idx}, nil
	}

	s.store.AddTask(text)
	idx := s.store.Snapshot().Len() - 1
	s.logger.Debug("task added", "index", idx)
	return Outcome{Action: Added, Index: idx}, nil
}

// ChooseEdit selects task i for editing and returns its current text, which
// the front end places in its input field.
func (s *Session) ChooseEdit(i int) (string, error) {
	if err := s.store.SetEditTask(i); err != nil {
		return "", err
	}
	text, _ := s.store.Snapshot().Task(i)
	s.logger.Debug("editing task", "index", i)
	return text, nil
}

// ChooseDelete removes task i.
func (s *Session) ChooseDelete(i int) error {
	if err := s.store.DeleteTask(i); err != nil {
		return err
	}
	s.logger.Debug("task deleted", "index", i, "remaining", s.store.Snapshot().Len())
	return nil
}

// Cancel abandons the current edit, if any.
func (s *Session) Cancel() {
	if s.store.Snapshot().Editing() {
		s.logger.Debug("edit cancelled")
	}
	s.store.ClearEdit()
}
