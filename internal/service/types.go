// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"fmt"
	"time"
)

// Status is a task's completion state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Task represents a single task as returned by the backend.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      int64     `json:"userId"`
}

// TaskDraft is the input for creating a task.
// Status defaults to pending when empty; the backend applies the same default.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status,omitempty"`
}

// TaskPatch is a partial update. Nil fields are omitted from the request body,
// so the backend only touches what was set. Title edits and status toggles are
// separate paths and never share a patch.
type TaskPatch struct {
	Title  *string `json:"title,omitempty"`
	Status *Status `json:"status,omitempty"`
}

// Filter selects tasks by status for display. It is transient UI state and is
// never sent to the backend.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// ParseFilter validates a filter name from user input.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterPending, FilterCompleted:
		return Filter(s), nil
	}
	return "", fmt.Errorf("invalid status filter: %s", s)
}

// Matches reports whether a task passes the filter.
func (f Filter) Matches(t Task) bool {
	if f == FilterAll {
		return true
	}
	return t.Status == Status(f)
}

// Apply returns the tasks that pass the filter, preserving backend order.
func (f Filter) Apply(tasks []Task) []Task {
	if f == FilterAll {
		return tasks
	}
	var result []Task
	for _, t := range tasks {
		if f.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}
