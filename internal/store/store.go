// Package store owns the task list and the edit cursor.
//
// Every mutation replaces the whole state with a new snapshot, so a Snapshot
// handed out earlier never changes underneath its holder. A Store is meant to
// be driven from a single goroutine and is not safe for concurrent use.
package store

import (
	"errors"
	"fmt"
	"slices"
)

// NoSelection is the edit cursor value when no task is being edited.
const NoSelection = -1

// ErrOutOfRange is matched by every error returned for an index outside
// [0, len).
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports the operation and index that failed a bounds check.
type OutOfRangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// Snapshot is an immutable view of the store state.
type Snapshot struct {
	tasks     []string
	editIndex int
}

// Tasks returns a copy of the task list in insertion order.
func (s Snapshot) Tasks() []string {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s Snapshot) Len() int {
	return len(s.tasks)
}

// Task returns the text at index i.
func (s Snapshot) Task(i int) (string, bool) {
	if i < 0 || i >= len(s.tasks) {
		return "", false
	}
	return s.tasks[i], true
}

// EditIndex returns the edit cursor. ok is false when nothing is selected.
func (s Snapshot) EditIndex() (index int, ok bool) {
	if s.editIndex == NoSelection {
		return NoSelection, false
	}
	return s.editIndex, true
}

// Editing reports whether a task is selected for editing.
func (s Snapshot) Editing() bool {
	return s.editIndex != NoSelection
}

// Store holds the current snapshot and its subscribers.
type Store struct {
	state     Snapshot
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(Snapshot)
}

// New returns an empty store with no selection.
func New() *Store {
	return &Store{state: Snapshot{editIndex: NoSelection}}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	return s.state
}

// AddTask appends text to the list. The edit cursor is left alone.
// Empty text is accepted; rejecting it is up to the caller.
func (s *Store) AddTask(text string) {
	tasks := make([]string, len(s.state.tasks), len(s.state.tasks)+1)
	copy(tasks, s.state.tasks)
	tasks = append(tasks, text)
	s.set(Snapshot{tasks: tasks, editIndex: s.state.editIndex})
}

// EditTask replaces the task at index and clears the edit cursor.
func (s *Store) EditTask(index int, text string) error {
	if err := s.check("edit", index); err != nil {
		return err
	}
	tasks := slices.Clone(s.state.tasks)
	tasks[index] = text
	s.set(Snapshot{tasks: tasks, editIndex: NoSelection})
	return nil
}

// DeleteTask removes the task at index, shifting later tasks down, and
// clears the edit cursor whatever it pointed at.
func (s *Store) DeleteTask(index int) error {
	if err := s.check("delete", index); err != nil {
		return err
	}
	tasks := make([]string, 0, len(s.state.tasks)-1)
	tasks = append(tasks, s.state.tasks[:index]...)
	tasks = append(tasks, s.state.tasks[index+1:]...)
	s.set(Snapshot{tasks: tasks, editIndex: NoSelection})
	return nil
}

// SetEditTask points the edit cursor at index.
func (s *Store) SetEditTask(index int) error {
	if err := s.check("select", index); err != nil {
		return err
	}
	if s.state.editIndex == index {
		return nil
	}
	s.set(Snapshot{tasks: s.state.tasks, editIndex: index})
	return nil
}

// ClearEdit resets the edit cursor. It does nothing when already idle.
func (s *Store) ClearEdit() {
	if s.state.editIndex == NoSelection {
		return
	}
	s.set(Snapshot{tasks: s.state.tasks, editIndex: NoSelection})
}

// Subscribe registers fn to be called with the new snapshot after every
// state change. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

func (s *Store) check(op string, index int) error {
	if index < 0 || index >= len(s.state.tasks) {
		return &OutOfRangeError{Op: op, Index: index, Len: len(s.state.tasks)}
	}
	return nil
}

func (s *Store) set(next Snapshot) {
	s.state = next
	for _, l := range slices.Clone(s.listeners) {
		l.fn(next)
	}
}
