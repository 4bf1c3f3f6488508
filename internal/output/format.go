// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskify/internal/service"
)

// State is the list view's render state, computed once per render and
// switched over exhaustively.
type State int

const (
	// StateLoading means no cached data exists and the initial fetch has not
	// resolved yet.
	StateLoading State = iota

	// StateError means the fetch failed and there is nothing to render.
	StateError

	// StateEmpty means the fetch succeeded and the filtered collection has
	// zero items.
	StateEmpty

	// StatePopulated means there are tasks to render.
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// FormatTask formats one task line, with its description on a continuation
// line when present.
// Format: "{N:>4}  [{MARK}] {TITLE}\n" where MARK is "x" for completed.
func FormatTask(w io.Writer, num int, task service.Task) {
	mark := " "
	if task.Status == service.StatusCompleted {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, mark, normalizeTitle(task.Title))
	if desc := normalizeLine(task.Description); desc != "" {
		fmt.Fprintf(w, "          %s\n", desc)
	}
}

// FormatFiltered formats the tasks matching filter. Numbers come from the
// task's position in the full collection, so a reference printed under one
// filter stays valid under another.
func FormatFiltered(w io.Writer, tasks []service.Task, filter service.Filter) {
	for i, task := range tasks {
		if filter.Matches(task) {
			FormatTask(w, i+1, task)
		}
	}
}

// EmptyMessage is the explicit empty-state line, distinct per filter so
// "no pending tasks" is not confused with an empty account.
func EmptyMessage(filter service.Filter) string {
	if filter == service.FilterAll {
		return "no tasks found"
	}
	return fmt.Sprintf("no %s tasks", filter)
}

// normalizeTitle normalizes a task title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeTitle(title string) string {
	title = normalizeLine(title)
	if title == "" {
		return "(untitled)"
	}
	return title
}

// normalizeLine folds newlines into spaces and trims the result.
func normalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
