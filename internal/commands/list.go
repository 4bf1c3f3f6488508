package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskify/internal/config"
	"taskify/internal/exitcode"
	"taskify/internal/output"
	"taskify/internal/service"
	"taskify/internal/session"
)

func init() {
	register(&ListCmd{})
}

// ListCmd implements the list command. Running taskify with no arguments
// dispatches here as well.
type ListCmd struct {
	status string
}

// SetStatus sets the status filter (for testing).
func (c *ListCmd) SetStatus(status string) {
	c.status = status
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskify list [--status all|pending|completed]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "all", "")
	fs.StringVar(&c.status, "s", "all", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	filter, err := service.ParseFilter(c.status)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Initial fetch, nothing cached to show yet.
	if _, ok := svc.CachedTasks(); !ok {
		c.render(out, errOut, cfg, output.StateLoading, filter, nil, nil)
	}

	tasks, fetchErr := svc.RefreshTasks(ctx)

	state := output.StatePopulated
	switch {
	case fetchErr != nil:
		state = output.StateError
	case len(filter.Apply(tasks)) == 0:
		state = output.StateEmpty
	}
	c.render(out, errOut, cfg, state, filter, tasks, fetchErr)

	if fetchErr != nil {
		return reportExitCode(fetchErr)
	}
	return exitcode.Success
}

// render draws one view state. The switch is exhaustive over output.State so
// a new state cannot be silently skipped.
func (c *ListCmd) render(out, errOut io.Writer, cfg *config.Config, state output.State, filter service.Filter, tasks []service.Task, err error) {
	switch state {
	case output.StateLoading:
		if !cfg.Quiet {
			fmt.Fprintln(errOut, "loading tasks...")
		}
	case output.StateError:
		fmt.Fprintf(errOut, "error: could not load tasks: %v\n", err)
	case output.StateEmpty:
		if !cfg.Quiet {
			fmt.Fprintln(out, output.EmptyMessage(filter))
		}
	case output.StatePopulated:
		output.FormatFiltered(out, tasks, filter)
	}
}
