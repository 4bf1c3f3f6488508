package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskify/internal/config"
	"taskify/internal/exitcode"
	"taskify/internal/service"
	"taskify/internal/session"
)

func init() {
	register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskify help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskify                                            List tasks (same as list)
  taskify list [common flags] [--status all|pending|completed]
  taskify add [common flags] [--desc <description>] <title...>
  taskify edit [common flags] <n> <title...>
  taskify toggle [common flags] <n>
  taskify rm [common flags] <n>
  taskify register [common flags] --email <email> --password <password>
  taskify login [common flags] --email <email> --password <password>
  taskify logout [common flags]
  taskify whoami [common flags]
  taskify help
  taskify version

Task references (<n>) are the numbers printed by taskify list.

Common flags:
  --config <dir>    Override config directory
  --api-url <url>   Override backend base URL (or set TASKIFY_API_URL)
  --quiet           Suppress informational output
  --debug           Print debug logs to stderr
`
