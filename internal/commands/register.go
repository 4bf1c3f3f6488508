package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskify/internal/api"
	"taskify/internal/config"
	"taskify/internal/exitcode"
	"taskify/internal/logging"
	"taskify/internal/service"
	"taskify/internal/session"
)

func init() {
	register(&RegisterCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct {
	email    string
	password string

	auth service.Authenticator // test override
}

// SetAuthenticator replaces the API client (for testing).
func (c *RegisterCmd) SetAuthenticator(a service.Authenticator) {
	c.auth = a
}

// SetCredentials sets the email and password (for testing).
func (c *RegisterCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "taskify register --email <email> --password <password>"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}

	auth := c.auth
	if auth == nil {
		auth = api.New(cfg, sess, logging.New(errOut, cfg.Debug))
	}

	if err := auth.Register(ctx, c.email, c.password); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
		fmt.Fprintln(out, "now log in with: taskify login")
	}
	return exitcode.Success
}
