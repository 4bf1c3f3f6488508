// Package taskcache caches the task collection fetched from the backend.
//
// The collection lives under a single logical key. Reads are served from
// cache while fresh; concurrent readers share one in-flight fetch. Any
// successful mutation publishes an invalidation event on the bus, which marks
// the entry stale so the next read refetches the whole collection; there is
// no per-entry patching. A snapshot on disk lets the next CLI invocation
// resolve positional task references against what the user last saw.
package taskcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sync"

	"github.com/rs/zerolog"

	"taskify/internal/service"
)

// Key is the cache key for the task collection.
const Key = "tasks"

// SnapshotTTL bounds how long a snapshot may satisfy reads without a refetch.
const SnapshotTTL = 5 * time.Minute

type snapshot struct {
	FetchedAt time.Time      `json:"fetchedAt"`
	Tasks     []service.Task `json:"tasks"`
}

// Store holds the cached task collection.
type Store struct {
	fetch func(ctx context.Context) ([]service.Task, error)
	path  string // snapshot file; "" disables persistence
	log   zerolog.Logger

	mu        sync.Mutex
	tasks     []service.Task
	fetchedAt time.Time
	loaded    bool
	stale     bool
	inflight  chan struct{} // non-nil while a fetch is running
	lastErr   error
}

// NewStore creates a store backed by fetch, restores the on-disk snapshot if
// one exists, and subscribes to invalidations of Key on the bus.
func NewStore(fetch func(ctx context.Context) ([]service.Task, error), path string, bus *Bus, log zerolog.Logger) *Store {
	s := &Store{fetch: fetch, path: path, log: log}
	s.restore()
	bus.Subscribe(Key, s.invalidated)
	return s
}

// Tasks returns the collection, fetching only when the cache is stale or
// empty. Concurrent callers during a fetch block until it resolves and share
// its outcome.
func (s *Store) Tasks(ctx context.Context) ([]service.Task, error) {
	s.mu.Lock()
	if s.fresh() {
		tasks := cloneTasks(s.tasks)
		s.mu.Unlock()
		return tasks, nil
	}
	return s.fetchLocked(ctx)
}

// Refresh always fetches, replacing the cached collection. A fetch already in
// flight is joined rather than duplicated.
func (s *Store) Refresh(ctx context.Context) ([]service.Task, error) {
	s.mu.Lock()
	s.stale = true
	return s.fetchLocked(ctx)
}

// Peek returns the cached collection without touching the network. ok is
// false when nothing has been fetched (or restored from a snapshot), and
// after an invalidation. Stale data must not be acted on by reference.
func (s *Store) Peek() ([]service.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded || s.stale {
		return nil, false
	}
	return cloneTasks(s.tasks), true
}

// fetchLocked runs or joins a fetch. Called with s.mu held; releases it.
func (s *Store) fetchLocked(ctx context.Context) ([]service.Task, error) {
	if s.inflight != nil {
		done := s.inflight
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastErr != nil {
			return nil, s.lastErr
		}
		return cloneTasks(s.tasks), nil
	}

	done := make(chan struct{})
	s.inflight = done
	s.mu.Unlock()

	tasks, err := s.fetch(ctx)

	s.mu.Lock()
	s.inflight = nil
	s.lastErr = err
	if err == nil {
		s.tasks = tasks
		s.fetchedAt = time.Now()
		s.loaded = true
		s.stale = false
		s.persist()
	}
	s.mu.Unlock()
	close(done)

	if err != nil {
		return nil, err
	}
	return cloneTasks(tasks), nil
}

func (s *Store) fresh() bool {
	return s.loaded && !s.stale && time.Since(s.fetchedAt) < SnapshotTTL
}

// invalidated handles an invalidation event: the whole collection is stale
// and the snapshot no longer reflects what the user should act on.
func (s *Store) invalidated(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Msg("failed to remove task snapshot")
		}
	}
	s.log.Debug().Str("key", key).Msg("cache invalidated")
}

// restore loads the snapshot written by a previous run. Corrupt or unreadable
// snapshots are dropped silently; the next read refetches.
func (s *Store) restore() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return
	}
	s.tasks = snap.Tasks
	s.fetchedAt = snap.FetchedAt
	s.loaded = true
}

// persist writes the snapshot. Called with s.mu held.
func (s *Store) persist() {
	if s.path == "" {
		return
	}
	data, err := json.MarshalIndent(snapshot{FetchedAt: s.fetchedAt, Tasks: s.tasks}, "", "  ")
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode task snapshot")
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		s.log.Warn().Err(err).Msg("failed to create config directory")
		return
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		s.log.Warn().Err(err).Msg(fmt.Sprintf("failed to write task snapshot to %s", s.path))
	}
}

func cloneTasks(tasks []service.Task) []service.Task {
	if tasks == nil {
		return nil
	}
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	return out
}
