package taskcache

import (
	"context"

	"taskify/internal/service"
)

// Backend is the slice of the HTTP client the caching layer needs.
type Backend interface {
	ListTasks(ctx context.Context) ([]service.Task, error)
	CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error)
	UpdateTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// Service implements service.Service: reads go through the store, writes go
// to the backend and publish an invalidation on success. Failed mutations
// leave the cache untouched; there are no optimistic updates to roll back.
type Service struct {
	backend Backend
	store   *Store
	bus     *Bus
}

// NewService wires a backend to a store over the given bus.
func NewService(backend Backend, store *Store, bus *Bus) *Service {
	return &Service{backend: backend, store: store, bus: bus}
}

func (s *Service) ListTasks(ctx context.Context) ([]service.Task, error) {
	return s.store.Tasks(ctx)
}

func (s *Service) RefreshTasks(ctx context.Context) ([]service.Task, error) {
	return s.store.Refresh(ctx)
}

func (s *Service) CachedTasks() ([]service.Task, bool) {
	return s.store.Peek()
}

func (s *Service) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	task, err := s.backend.CreateTask(ctx, draft)
	if err != nil {
		return service.Task{}, err
	}
	s.bus.Publish(Key)
	return task, nil
}

func (s *Service) UpdateTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error) {
	task, err := s.backend.UpdateTask(ctx, id, patch)
	if err != nil {
		return service.Task{}, err
	}
	s.bus.Publish(Key)
	return task, nil
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if err := s.backend.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(Key)
	return nil
}
