// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service is what commands program against. All task traffic goes through this
// interface; commands never import the HTTP client directly. Reads go through
// the task-collection cache, writes invalidate it on success.
type Service interface {
	// ListTasks returns the task collection, served from cache when fresh.
	// Concurrent callers share a single in-flight fetch.
	ListTasks(ctx context.Context) ([]Task, error)

	// RefreshTasks always fetches from the backend and replaces the cache.
	RefreshTasks(ctx context.Context) ([]Task, error)

	// CachedTasks returns the cached collection without touching the network.
	// ok is false when nothing has been fetched yet.
	CachedTasks() (tasks []Task, ok bool)

	// CreateTask creates a task. The cache is invalidated on success.
	CreateTask(ctx context.Context, draft TaskDraft) (Task, error)

	// UpdateTask applies a partial update. The cache is invalidated on success.
	UpdateTask(ctx context.Context, id int64, patch TaskPatch) (Task, error)

	// DeleteTask deletes a task. The cache is invalidated on success.
	DeleteTask(ctx context.Context, id int64) error
}

// Authenticator covers the unauthenticated auth endpoints used by the register
// and login commands. Login returns the bearer token issued by the backend;
// storing it is the session store's job, not the client's.
type Authenticator interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (token string, err error)
}
