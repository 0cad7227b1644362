// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"todolist/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeService is an in-memory implementation of service.Service for testing.
// Like the real API, CreateTask puts new tasks at the top of a list.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.TaskList
	tasks map[string][]string // listID -> titles, top first

	// Error injection for testing
	DefaultListErr error
	ListListsErr   error
	ResolveListErr error
	CreateListErr  error
	CreateTaskErr  error
}

// NewFakeService creates a new FakeService with a default list.
func NewFakeService() *FakeService {
	fs := &FakeService{
		tasks: make(map[string][]string),
	}
	fs.lists = []service.TaskList{
		{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
	}
	fs.tasks[DefaultListID] = nil
	return fs
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title, IsDefault: false})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// Tasks returns the titles in a list, top first.
func (f *FakeService) Tasks(listID string) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]string, len(f.tasks[listID]))
	copy(result, f.tasks[listID])
	return result
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.TaskList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	lists, _ := f.ListLists(ctx)
	return service.MatchList(lists, name)
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, name string) (service.TaskList, error) {
	if f.CreateListErr != nil {
		return service.TaskList{}, f.CreateListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	id := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	list := service.TaskList{ID: id, Title: name}
	f.lists = append(f.lists, list)
	f.tasks[id] = nil
	return list, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID, title string) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return service.ErrNotFound
	}
	f.tasks[listID] = append([]string{title}, tasks...)
	return nil
}
