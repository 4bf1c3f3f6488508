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
	register(&WhoamiCmd{})
}

// WhoamiCmd prints the session state. Token claims are decoded without
// verification, purely for display; an opaque token just reports "logged in".
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show session state" }
func (c *WhoamiCmd) Usage() string     { return "taskify whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if !sess.LoggedIn() {
		fmt.Fprintln(out, "not logged in")
		return exitcode.Success
	}

	fmt.Fprintln(out, "logged in")
	if claims, ok := sess.Claims(); ok {
		if claims.Email != "" {
			fmt.Fprintf(out, "email: %s\n", claims.Email)
		}
		if claims.Subject != "" {
			fmt.Fprintf(out, "user: %s\n", claims.Subject)
		}
	}
	return exitcode.Success
}
