// Package service defines the backend-agnostic interface for remote task lists.
package service

import "context"

// Service is the remote side of export.
// Commands never import the Google SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrNotFound or ErrAmbiguous (wrapped) when it cannot pick one.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateList creates a new task list and returns it.
	CreateList(ctx context.Context, name string) (TaskList, error)

	// CreateTask creates a new task in the specified list.
	// New tasks are placed at the top of the list.
	CreateTask(ctx context.Context, listID, title string) error
}
