package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"taskify/internal/service"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// parseTaskRef parses the 1-based task number from args.
func parseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return num, nil
}

// findTaskByPosition resolves a 1-based position from the most recent listing.
// The cached collection is preferred so a reference given right after `list`
// acts on what the user saw; when the cache is stale or absent the collection
// is fetched first.
func findTaskByPosition(ctx context.Context, svc service.Service, num int) (service.Task, error) {
	tasks, ok := svc.CachedTasks()
	if !ok {
		var err error
		tasks, err = svc.ListTasks(ctx)
		if err != nil {
			return service.Task{}, err
		}
	}
	if num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}
