// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"taskify/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service and
// service.Authenticator for testing commands without a backend.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int64

	// Uncached makes CachedTasks report no cached data, as on a first run.
	Uncached bool

	// Token is what Login hands out.
	Token string

	// Error injection for testing
	RegisterErr error
	LoginErr    error
	ListErr     error
	CreateErr   error
	UpdateErr   error
	DeleteErr   error

	// Call recording
	ListCalls    int
	CreateCalls  int
	UpdateCalls  int
	DeleteCalls  int
	LastDraft    service.TaskDraft
	LastPatch    service.TaskPatch
	LastPatchID  int64
	Registered   []string
	LoginAttempt string
}

// NewFakeService creates an empty fake service.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1, Token: "fake-token"}
}

// AddTask seeds a task and returns it.
func (f *FakeService) AddTask(title, description string, status service.Status) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now(),
		UserID:      1,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task
}

// Tasks returns a copy of the current collection.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Register implements service.Authenticator.
func (f *FakeService) Register(ctx context.Context, email, password string) error {
	if f.RegisterErr != nil {
		return f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Registered = append(f.Registered, email)
	return nil
}

// Login implements service.Authenticator.
func (f *FakeService) Login(ctx context.Context, email, password string) (string, error) {
	f.LoginAttempt = email
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.Token, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Tasks(), nil
}

// RefreshTasks implements service.Service.
func (f *FakeService) RefreshTasks(ctx context.Context) ([]service.Task, error) {
	return f.ListTasks(ctx)
}

// CachedTasks implements service.Service.
func (f *FakeService) CachedTasks() ([]service.Task, bool) {
	if f.Uncached {
		return nil, false
	}
	return f.Tasks(), true
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	f.CreateCalls++
	f.LastDraft = draft
	if f.CreateErr != nil {
		return service.Task{}, f.CreateErr
	}
	status := draft.Status
	if status == "" {
		status = service.StatusPending
	}
	return f.AddTask(draft.Title, draft.Description, status), nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error) {
	f.UpdateCalls++
	f.LastPatchID = id
	f.LastPatch = patch
	if f.UpdateErr != nil {
		return service.Task{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			if patch.Title != nil {
				f.tasks[i].Title = *patch.Title
			}
			if patch.Status != nil {
				f.tasks[i].Status = *patch.Status
			}
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
